package solver

import (
	"container/heap"
	"sort"

	"github.com/pkg/errors"

	"github.com/Flolle/terminal-flood/bitset"
	"github.com/Flolle/terminal-flood/board"
	"github.com/Flolle/terminal-flood/state"
)

// NoQueueCutoff disables the memory-bounded queue compaction (§4.6
// step 5); the frontier is then allowed to grow without bound.
const NoQueueCutoff = 0

// MemoryBoundedCutoff is the pre-set cutoff for the memory-conscious
// batch mode (§4.6).
const MemoryBoundedCutoff = 1_000_000

// searchNode is one frontier entry: a handle into the ring cache (or,
// on eviction, enough to reconstruct via the move chain), the move
// chain end index, the g-cost, the combined priority, the previous
// move (for symmetry pruning), and whether this node was produced by
// the color-elimination preference (§3 "search node").
type searchNode struct {
	cacheIndex        int
	moveChainEnd      int
	g                 int
	priority          int
	lastMove          board.Color
	hasLastMove       bool
	isEliminationNode bool
}

// nodeHeap implements container/heap.Interface over *searchNode,
// ordered by priority ascending, ties broken by g descending (prefer
// deeper nodes) per §4.6.
type nodeHeap []*searchNode

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].g > h[j].g
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x interface{}) {
	*h = append(*h, x.(*searchNode))
}

func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// invariantViolation marks an internal panic raised only for the
// impossible conditions §7 calls out (frontier exhaustion, g-cost
// overflow); Solve/SolveFromPartial always recover it into a normal
// error and never let it escape to the caller.
type invariantViolation struct{ err error }

func panicInvariant(format string, args ...interface{}) {
	panic(invariantViolation{errors.Errorf(format, args...)})
}

// resolveState returns the BoardState a search node represents, taking
// the fast path through the ring cache and falling back to replaying
// the move chain onto a fresh SimpleBoardState on a cache miss (§4.6
// step 1).
func resolveState(node *searchNode, gb *board.GameBoard, chain *state.MoveCollection, cache *ringCache) state.BoardState {
	if pos, ok := cache.Get(node.cacheIndex); ok {
		return pos
	}
	moves := chain.Moves(node.moveChainEnd)
	scratch := state.NewSimpleBoardState(state.NewBoardState(gb))
	for _, c := range moves {
		scratch.MakeMove(c)
	}
	return scratch.BoardState
}

// compactFrontier implements the queue-cutoff triage (§4.6 step 5):
// score every frontier node by g + greedy(state), stable-sort
// ascending, and keep only the better half. This is the only operation
// that can cause a worse-than-heuristic result.
func compactFrontier(frontier *nodeHeap, gb *board.GameBoard, chain *state.MoveCollection, cache *ringCache) {
	type scored struct {
		node  *searchNode
		score int
	}
	all := make([]scored, len(*frontier))
	for i, n := range *frontier {
		pos := resolveState(n, gb, chain, cache)
		all[i] = scored{n, n.g + GreedyMoveCount(pos)}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].score < all[j].score })

	keep := (len(all) + 1) / 2
	*frontier = (*frontier)[:0]
	for i := 0; i < keep; i++ {
		*frontier = append(*frontier, all[i].node)
	}
	heap.Init(frontier)
}

// lastAscending returns the greatest color in cs, used so a
// color-elimination batch's recorded "last move" is the last one
// actually applied (ascending application order, §4.6 step 3 open
// question).
func lastAscending(cs bitset.ColorSet) board.Color {
	last := board.Color(-1)
	cs.ForEach(func(c int) { last = board.Color(c) })
	return last
}

// Stats reports self-reported counters from one solve invocation,
// mirroring the teacher's SolutionResult fields (NodesExplored,
// NodesGenerated, MaxOpenSetSize): the kind of numbers a caller
// compares across strategies or dataset runs.
type Stats struct {
	NodesExplored    int
	NodesGenerated   int
	MaxFrontierSize  int
	CutoffsTriggered int
}

// Solve runs the A* search from scratch over gb's start region (§4.6).
// The board's own MaxSteps is never consulted; the driver always works
// against an internally unbounded copy. queueCutoff <= 0 disables
// compaction (NoQueueCutoff).
func Solve(gb *board.GameBoard, strategy Strategy, queueCutoff int) ([]board.Color, error) {
	moves, _, err := SolveWithStats(gb, strategy, queueCutoff)
	return moves, err
}

// SolveWithStats is Solve plus the search's self-reported counters.
func SolveWithStats(gb *board.GameBoard, strategy Strategy, queueCutoff int) ([]board.Color, Stats, error) {
	return SolveFromPartialWithStats(state.NewGame(gb.WithUnboundedSteps()), strategy, queueCutoff)
}

// SolveFromPartial resumes a search from an already-played Game (§6),
// returning the full move sequence including the moves already played
// on g.
func SolveFromPartial(g state.Game, strategy Strategy, queueCutoff int) ([]board.Color, error) {
	moves, _, err := SolveFromPartialWithStats(g, strategy, queueCutoff)
	return moves, err
}

// SolveFromPartialWithStats is SolveFromPartial plus the search's
// self-reported counters.
func SolveFromPartialWithStats(g state.Game, strategy Strategy, queueCutoff int) (moves []board.Color, stats Stats, err error) {
	defer func() {
		if r := recover(); r != nil {
			iv, ok := r.(invariantViolation)
			if !ok {
				panic(r)
			}
			moves, err = nil, errors.Wrap(iv.err, "solver: invariant violation")
		}
	}()

	if g.IsWon() {
		return append([]board.Color(nil), g.PlayedMoves...), stats, nil
	}

	gb := g.Position.Board
	chain := state.NewMoveCollection()
	cache := newRingCache(defaultRingCacheSize)
	fp := newFingerprintTable(gb.WordCount())

	rootChainEnd := state.NoPrev
	for _, c := range g.PlayedMoves {
		rootChainEnd = chain.AddMoveEntry(rootChainEnd, c)
	}
	g0 := len(g.PlayedMoves)

	frontier := &nodeHeap{}
	heap.Init(frontier)

	trackFrontierSize := func() {
		if frontier.Len() > stats.MaxFrontierSize {
			stats.MaxFrontierSize = frontier.Len()
		}
	}

	g.SensibleMoves.ForEach(func(c int) {
		successor := g.Position.Clone()
		if !successor.ApplyMove(board.Color(c)) {
			return
		}
		gCost := g0 + 1
		if !fp.PutIfLess(successor.Filled, gCost) {
			return
		}
		idx := cache.Add(successor)
		chainEnd := chain.AddMoveEntry(rootChainEnd, board.Color(c))
		h := Estimate(strategy, successor)
		heap.Push(frontier, &searchNode{
			cacheIndex:   idx,
			moveChainEnd: chainEnd,
			g:            gCost,
			priority:     gCost + h,
			lastMove:     board.Color(c),
			hasLastMove:  true,
		})
		stats.NodesGenerated++
		trackFrontierSize()
	})

	for frontier.Len() > 0 {
		node := heap.Pop(frontier).(*searchNode)
		stats.NodesExplored++
		pos := resolveState(node, gb, chain, cache)

		if pos.IsWon() {
			return chain.Moves(node.moveChainEnd), stats, nil
		}

		if !strategy.isAdmissible() {
			elim := eliminableColors(pos)
			if !elim.IsEmpty() {
				newPos := pos.Clone()
				chainEnd := node.moveChainEnd
				gCost := node.g
				elim.ForEach(func(c int) {
					newPos.ApplyMove(board.Color(c))
					chainEnd = chain.AddMoveEntry(chainEnd, board.Color(c))
					gCost++
				})
				if gCost > maxG {
					panicInvariant("fingerprint g-cost overflow at %d moves", gCost)
				}
				if fp.PutIfLess(newPos.Filled, gCost) {
					idx := cache.Add(newPos)
					h := Estimate(strategy, newPos)
					heap.Push(frontier, &searchNode{
						cacheIndex:        idx,
						moveChainEnd:      chainEnd,
						g:                 gCost,
						priority:          gCost + h,
						lastMove:          lastAscending(elim),
						hasLastMove:       true,
						isEliminationNode: true,
					})
					stats.NodesGenerated++
					trackFrontierSize()
				}
				if queueCutoff > 0 && frontier.Len() > queueCutoff {
					compactFrontier(frontier, gb, chain, cache)
					stats.CutoffsTriggered++
				}
				continue
			}
		}

		allowed := allowedMoves(strategy, pos, node.lastMove, node.hasLastMove, node.isEliminationNode)
		allowed.ForEach(func(c int) {
			newPos := pos.Clone()
			if !newPos.ApplyMove(board.Color(c)) {
				return
			}
			gCost := node.g + 1
			if gCost > maxG {
				panicInvariant("fingerprint g-cost overflow at %d moves", gCost)
			}
			if !fp.PutIfLess(newPos.Filled, gCost) {
				return
			}
			idx := cache.Add(newPos)
			chainEnd := chain.AddMoveEntry(node.moveChainEnd, board.Color(c))
			h := Estimate(strategy, newPos)
			heap.Push(frontier, &searchNode{
				cacheIndex:   idx,
				moveChainEnd: chainEnd,
				g:            gCost,
				priority:     gCost + h,
				lastMove:     board.Color(c),
				hasLastMove:  true,
			})
			stats.NodesGenerated++
			trackFrontierSize()
		})

		if queueCutoff > 0 && frontier.Len() > queueCutoff {
			compactFrontier(frontier, gb, chain, cache)
			stats.CutoffsTriggered++
		}
	}

	panicInvariant("frontier exhausted without reaching a won state")
	return nil, stats, nil
}
