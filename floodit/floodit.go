// Package floodit is the glue layer consuming the core solver
// packages: it wires board construction, the A* driver, and batch
// dataset solving behind the entry points an outer CLI or dataset tool
// calls (§6 Solver entry points). It owns no search logic of its own.
package floodit

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/Flolle/terminal-flood/board"
	"github.com/Flolle/terminal-flood/solver"
	"github.com/Flolle/terminal-flood/state"
)

// logger is package-global and defaults to zerolog's documented no-op
// logger, so embedding this package doesn't force a sink on a caller
// that never calls SetLogger.
var logger = zerolog.Nop()

// SetLogger installs l as the package's logger. Safe to call once at
// startup before any Solve call; not safe to change concurrently with
// in-flight solves.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// Solve finds a move sequence solving gb's puzzle from scratch (§6).
// queueCutoff <= 0 disables the memory-bounded queue compaction
// (solver.NoQueueCutoff).
func Solve(gb *board.GameBoard, strategy solver.Strategy, queueCutoff int) ([]board.Color, error) {
	start := time.Now()
	logger.Debug().
		Str("strategy", strategy.String()).
		Int("regions", gb.AmountOfNodes()).
		Int("fields", gb.AmountOfFields()).
		Msg("solve start")

	moves, err := solver.Solve(gb, strategy, queueCutoff)
	if err != nil {
		logger.Error().Err(err).Str("strategy", strategy.String()).Msg("solve failed")
		return nil, err
	}

	logger.Info().
		Str("strategy", strategy.String()).
		Int("moves", len(moves)).
		Dur("elapsed", time.Since(start)).
		Msg("solve finished")
	return moves, nil
}

// SolveFromPartial resumes a search from an already-played Game,
// returning the full move sequence including moves already played.
func SolveFromPartial(g state.Game, strategy solver.Strategy, queueCutoff int) ([]board.Color, error) {
	start := time.Now()
	logger.Debug().
		Str("strategy", strategy.String()).
		Int("movesAlreadyPlayed", len(g.PlayedMoves)).
		Msg("resume start")

	moves, err := solver.SolveFromPartial(g, strategy, queueCutoff)
	if err != nil {
		logger.Error().Err(err).Str("strategy", strategy.String()).Msg("resume failed")
		return nil, err
	}

	logger.Info().
		Str("strategy", strategy.String()).
		Int("moves", len(moves)).
		Dur("elapsed", time.Since(start)).
		Msg("resume finished")
	return moves, nil
}

// CreateBoard builds a board from a deterministic (seed, size, colors)
// tuple (§6).
func CreateBoard(seed string, size, colors int, startPos board.StartPosition, maxSteps int) (*board.GameBoard, error) {
	return board.CreateBoard(seed, size, colors, startPos, maxSteps)
}

// ParseCompactBoard builds a board from a compact base-35 string (§6).
func ParseCompactBoard(s string, startPos board.StartPosition, maxSteps int) (*board.GameBoard, error) {
	return board.NewGameBoardFromCompact(s, startPos, maxSteps)
}

// FormatCompactBoard renders gb's original color grid back to a
// compact base-35 string, reconstructing the grid from the region
// graph's occupied fields.
func FormatCompactBoard(gb *board.GameBoard) string {
	grid := make([][]board.Color, gb.Size)
	for y := range grid {
		grid[y] = make([]board.Color, gb.Size)
	}
	for _, n := range gb.Nodes {
		for _, p := range n.OccupiedFields {
			grid[p.Y][p.X] = n.Color
		}
	}
	return board.FormatCompactGrid(grid)
}

// FormatMoves renders a move sequence using the compact base-35
// alphabet (§6 Solution output).
func FormatMoves(moves []board.Color) string {
	return board.FormatMoves(moves)
}

// ParseMoves is the inverse of FormatMoves.
func ParseMoves(s string) ([]board.Color, error) {
	return board.ParseMoves(s)
}
