package solver

import (
	"github.com/Flolle/terminal-flood/bitset"
	"github.com/Flolle/terminal-flood/board"
	"github.com/Flolle/terminal-flood/state"
)

// eliminableColors returns the colors with at least one region in
// neighbors and none in notFilledNotNeighbors (§4.3, §4.6 step 3): a
// color this board can remove entirely in one batched step. A color
// that is already fully filled also has none of its regions in
// notFilledNotNeighbors but contributes nothing new, so it is excluded
// by the neighbors-intersection test.
func eliminableColors(s state.BoardState) bitset.ColorSet {
	gb := s.Board
	var elim bitset.ColorSet
	gb.Colors.ForEach(func(c int) {
		regions := gb.NodesByColor[c]
		if regions.Intersects(s.NotFilledNotNeighbors) {
			return
		}
		if regions.Intersects(s.Neighbors) {
			elim = elim.Set(c)
		}
	})
	return elim
}

// filledFieldCount is the grid-cell count (not region count) currently
// claimed, used by INADMISSIBLE_SLOW's half-filled fallback test.
func filledFieldCount(s state.BoardState) int {
	count := 0
	s.Filled.ForEach(func(i int) {
		count += s.Board.Nodes[i].AmountOfFields()
	})
	return count
}

// colorExposure scores a sensible color by how much new board area
// playing it alone would expose: the occupied-field count of the
// regions that would newly become neighbors (§4.3's "bordering and
// not-yet-touched region set").
func colorExposure(s state.BoardState, c board.Color) int {
	gb := s.Board
	absorbed := gb.NodesByColor[c].Clone()
	absorbed.IntersectWith(s.Neighbors)

	newBorder := bitset.NewNodeSet(gb.AmountOfNodes())
	absorbed.ForEach(func(i int) {
		newBorder.UnionWith(gb.Nodes[i].BorderingNodes)
	})
	newBorder.IntersectWith(s.NotFilledNotNeighbors)

	fields := 0
	newBorder.ForEach(func(i int) {
		fields += gb.Nodes[i].AmountOfFields()
	})
	return fields
}

// bestExposureColor returns the single sensible color with the
// greatest colorExposure, breaking ties by the smaller color value for
// determinism. ok is false if there are no sensible moves (won state).
func bestExposureColor(s state.BoardState) (c board.Color, ok bool) {
	sm := state.SensibleMoves(s)
	best := -1
	bestScore := -1
	sm.ForEach(func(cand int) {
		score := colorExposure(s, board.Color(cand))
		if score > bestScore {
			bestScore = score
			best = cand
		}
	})
	if best < 0 {
		return 0, false
	}
	return board.Color(best), true
}

// topTwoExposureColors returns the two sensible colors with the
// greatest colorExposure, for INADMISSIBLE_SLOW's two-color step. If
// only one sensible color remains, ok2 is false and c2 is meaningless.
func topTwoExposureColors(s state.BoardState) (c1, c2 board.Color, ok2 bool) {
	sm := state.SensibleMoves(s)
	best1, best2 := -1, -1
	score1, score2 := -1, -1
	sm.ForEach(func(cand int) {
		score := colorExposure(s, board.Color(cand))
		if score > score1 {
			best2, score2 = best1, score1
			best1, score1 = cand, score
		} else if score > score2 {
			best2, score2 = cand, score
		}
	})
	if best1 < 0 {
		return 0, 0, false
	}
	if best2 < 0 {
		return board.Color(best1), 0, false
	}
	return board.Color(best1), board.Color(best2), true
}

// admissibleEstimate is the ADMISSIBLE strategy (§4.4): repeatedly
// eliminate every eliminable color at once, else take a color-blind
// step; never overestimates moves remaining.
func admissibleEstimate(pos state.BoardState) int {
	if pos.IsWon() {
		return 0
	}
	scratch := state.NewSimpleBoardState(pos.Clone())
	moves := 0
	for !scratch.IsWon() {
		elim := eliminableColors(scratch.BoardState)
		if !elim.IsEmpty() {
			scratch.MakeMultiColorMove(elim)
			moves += elim.Count()
			continue
		}
		scratch.MakeColorBlindMove()
		moves++
	}
	return moves
}

// inadmissibleSlowEstimate is INADMISSIBLE_SLOW (§4.4): falls back to
// ADMISSIBLE once at least half the board is filled, otherwise commits
// to the two best-exposure colors per step instead of a color-blind one.
func inadmissibleSlowEstimate(pos state.BoardState) int {
	if pos.IsWon() {
		return 0
	}
	if 2*filledFieldCount(pos) >= pos.Board.AmountOfFields() {
		return admissibleEstimate(pos)
	}
	scratch := state.NewSimpleBoardState(pos.Clone())
	moves := 0
	for !scratch.IsWon() {
		elim := eliminableColors(scratch.BoardState)
		if !elim.IsEmpty() {
			scratch.MakeMultiColorMove(elim)
			moves += elim.Count()
			continue
		}
		c1, c2, ok := topTwoExposureColors(scratch.BoardState)
		if !ok {
			scratch.MakeMove(c1)
			moves++
			continue
		}
		var pair bitset.ColorSet
		pair = pair.Set(int(c1)).Set(int(c2))
		scratch.MakeMultiColorMove(pair)
		moves++
	}
	return moves
}

// inadmissibleEstimate is INADMISSIBLE: INADMISSIBLE_SLOW inflated by
// a thirteenth of itself (integer floor), a deliberately looser bound.
func inadmissibleEstimate(pos state.BoardState) int {
	slow := inadmissibleSlowEstimate(pos)
	return slow + slow/13
}

// inadmissibleFastEstimate is INADMISSIBLE_FAST: a blend of the
// admissible lower bound and the greedy-derived FASTEST estimate.
func inadmissibleFastEstimate(pos state.BoardState) int {
	return (admissibleEstimate(pos) + 2*inadmissibleFastestEstimate(pos)) / 3
}

// inadmissibleFastestEstimate is INADMISSIBLE_FASTEST: the greedy move
// count from the current position, the cheapest of the five.
func inadmissibleFastestEstimate(pos state.BoardState) int {
	return GreedyMoveCount(pos)
}

// Estimate dispatches to the heuristic strategy's estimator. A won
// position always returns 0 regardless of strategy.
func Estimate(strategy Strategy, pos state.BoardState) int {
	if pos.IsWon() {
		return 0
	}
	switch strategy {
	case Admissible:
		return admissibleEstimate(pos)
	case InadmissibleSlow:
		return inadmissibleSlowEstimate(pos)
	case Inadmissible:
		return inadmissibleEstimate(pos)
	case InadmissibleFast:
		return inadmissibleFastEstimate(pos)
	case InadmissibleFastest:
		return inadmissibleFastestEstimate(pos)
	default:
		return inadmissibleFastestEstimate(pos)
	}
}
