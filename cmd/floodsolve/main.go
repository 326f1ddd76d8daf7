// Command floodsolve is a thin demonstration binary over package
// floodit: build one board (from a seed or a compact string) and print
// its solution. It reads a handful of flags and nothing more: dataset
// I/O and an interactive play loop are not provided; this exists only
// to exercise the library end to end.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/Flolle/terminal-flood/board"
	"github.com/Flolle/terminal-flood/floodit"
	"github.com/Flolle/terminal-flood/solver"
)

func main() {
	seed := flag.String("seed", "", "deterministic seed for createBoard (mutually exclusive with -board)")
	compact := flag.String("board", "", "compact base-35 board string (mutually exclusive with -seed)")
	size := flag.Int("size", 14, "board size, used only with -seed")
	colors := flag.Int("colors", 6, "color count, used only with -seed")
	strategyName := flag.String("strategy", solver.Admissible.String(), "strategy: astar_a, astar_ias, astar_ia, astar_iaf, astar_iaff")
	startPosName := flag.String("start", "upper-left", "upper-left, upper-right, lower-left, lower-right, middle")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	floodit.SetLogger(logger)

	startPos, err := board.ParseStartPosition(*startPosName)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid -start value")
	}
	strategy, err := solver.ParseStrategy(*strategyName)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid -strategy value")
	}

	var gb *board.GameBoard
	switch {
	case *seed != "":
		gb, err = floodit.CreateBoard(*seed, *size, *colors, startPos, 0)
	case *compact != "":
		gb, err = floodit.ParseCompactBoard(*compact, startPos, 0)
	default:
		logger.Fatal().Msg("one of -seed or -board is required")
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build board")
	}

	moves, err := floodit.Solve(gb.WithUnboundedSteps(), strategy, solver.NoQueueCutoff)
	if err != nil {
		logger.Fatal().Err(err).Msg("solve failed")
	}

	fmt.Printf("board:    %s\n", floodit.FormatCompactBoard(gb))
	fmt.Printf("strategy: %s\n", strategy)
	fmt.Printf("moves:    %s (%d)\n", floodit.FormatMoves(moves), len(moves))
}
