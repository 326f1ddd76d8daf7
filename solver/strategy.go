// Package solver implements the A*-based Flood-It search: the five
// heuristic strategies, the two symmetry pruners, the board-state
// fingerprint table, the ring cache of expanded states, and the driver
// tying them together.
package solver

import "github.com/pkg/errors"

// Strategy selects one of the five heuristic/pruning combinations the
// driver runs.
type Strategy int

const (
	// Admissible never overestimates moves remaining; combined with an
	// unbounded queue cutoff, the driver's first win is optimal.
	Admissible Strategy = iota
	// InadmissibleSlow is the tightest inadmissible estimate: same loop
	// as Admissible, but once no elimination is available it commits to
	// two colors at a time instead of one color-blind step.
	InadmissibleSlow
	// Inadmissible is InadmissibleSlow plus a thirteenth of itself.
	Inadmissible
	// InadmissibleFast blends Admissible and InadmissibleFastest.
	InadmissibleFast
	// InadmissibleFastest is the greedy move count, the cheapest and
	// loosest of the five.
	InadmissibleFastest
)

// String renders the strategy identifier used on the external boundary
// (dataset files, CLI flags).
func (s Strategy) String() string {
	switch s {
	case Admissible:
		return "astar_a"
	case InadmissibleSlow:
		return "astar_ias"
	case Inadmissible:
		return "astar_ia"
	case InadmissibleFast:
		return "astar_iaf"
	case InadmissibleFastest:
		return "astar_iaff"
	default:
		return "unknown"
	}
}

// ParseStrategy is the inverse of String.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "astar_a":
		return Admissible, nil
	case "astar_ias":
		return InadmissibleSlow, nil
	case "astar_ia":
		return Inadmissible, nil
	case "astar_iaf":
		return InadmissibleFast, nil
	case "astar_iaff":
		return InadmissibleFastest, nil
	default:
		return 0, errors.Errorf("solver: unknown strategy identifier %q", s)
	}
}

// isAdmissible reports whether s never overestimates moves remaining;
// only this strategy may use the stronger admissible pruner and skip
// the color-elimination preference's special-cased relaxation.
func (s Strategy) isAdmissible() bool {
	return s == Admissible
}
