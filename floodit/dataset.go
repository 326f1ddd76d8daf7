package floodit

import (
	"bufio"
	"context"
	"io"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Flolle/terminal-flood/board"
	"github.com/Flolle/terminal-flood/solver"
)

// unsolvedMarker replaces a dataset line's solution when a board could
// not be solved (§6 Dataset format), the legacy meaning being a bounded
// step cap rejecting the board; our driver is internally unbounded, so
// in practice this only fires for a malformed input line.
const unsolvedMarker = "game not won"

// DatasetOptions configures SolveDataset. A zero value is usable:
// Workers <= 0 defaults to GOMAXPROCS, and the other fields default to
// their corresponding board/solver zero values.
type DatasetOptions struct {
	StartPos    board.StartPosition
	Strategy    solver.Strategy
	QueueCutoff int
	Workers     int
}

// SolveDataset reads one compact board per line from boards (blank
// lines ignored, §6 Dataset format), solves each with opts concurrently
// bounded by opts.Workers, and writes one solution line per non-blank
// input line to solutions in the same order, using unsolvedMarker for any board
// that fails to parse or solve. This is Glue consuming the one dataset
// format spec.md itself defines, not the excluded general-purpose
// dataset-file-I/O surface.
func SolveDataset(ctx context.Context, boards io.Reader, solutions io.Writer, opts DatasetOptions) error {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var lines []string
	scanner := bufio.NewScanner(boards)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "floodit: reading dataset")
	}

	results := make([]string, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, workers)

	for i, compact := range lines {
		i, compact := i, compact
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-gctx.Done():
				return gctx.Err()
			}
			defer func() { <-sem }()

			results[i] = solveDatasetLine(i, compact, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "floodit: solving dataset")
	}

	w := bufio.NewWriter(solutions)
	for _, line := range results {
		if _, err := w.WriteString(line); err != nil {
			return errors.Wrap(err, "floodit: writing solutions")
		}
		if err := w.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "floodit: writing solutions")
		}
	}
	return w.Flush()
}

func solveDatasetLine(lineNum int, compact string, opts DatasetOptions) string {
	gb, err := board.NewGameBoardFromCompact(compact, opts.StartPos, 0)
	if err != nil {
		logger.Warn().Err(err).Int("line", lineNum+1).Msg("skipping malformed board")
		return unsolvedMarker
	}

	moves, err := Solve(gb.WithUnboundedSteps(), opts.Strategy, opts.QueueCutoff)
	if err != nil {
		logger.Warn().Err(err).Int("line", lineNum+1).Msg("board not won")
		return unsolvedMarker
	}
	return board.FormatMoves(moves)
}
