// Package board builds the region graph a Flood-It grid reduces to: the
// GameBoard of maximal same-color BoardNodes and the NodeSet indices
// over them. It owns the only mutable-during-construction, frozen-after
// state in the solver; everywhere past construction, a region is
// referred to purely by its int id.
package board

import (
	"github.com/pkg/errors"

	"github.com/Flolle/terminal-flood/bitset"
)

// Color is a small integer identifying a cell/region color. Colors are
// opaque to the solver beyond comparability and presence: 1..MaxColor
// are legal board colors, NoColor marks the absence of one.
type Color int8

// NoColor is the reserved "no color" sentinel (spec: value 0/-1 reserved).
const NoColor Color = -1

// MaxColor is the highest legal color value.
const MaxColor = bitset.MaxColor

// Point is a grid cell coordinate, 0 <= X,Y < boardSize.
type Point struct {
	X, Y int
}

// Less orders points lexicographically on (Y, X), the order construction
// uses for reproducibility (row-major scan).
func (p Point) Less(o Point) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

// Node is a maximal 4-connected region of same-colored cells.
type Node struct {
	ID             int
	Color          Color
	OccupiedFields []Point
	BorderingNodes bitset.NodeSet
}

// AmountOfFields returns the number of grid cells this region occupies.
func (n *Node) AmountOfFields() int {
	return len(n.OccupiedFields)
}

// GameBoard is the whole puzzle: the frozen region graph plus the
// indices the solver queries during search. It never changes after
// construction, so it may be shared freely across goroutines (the
// batch dispatcher in package floodit solves several boards in
// parallel; each goroutine builds and reads its own *GameBoard).
type GameBoard struct {
	Nodes        []*Node
	NodesByColor [MaxColor + 1]bitset.NodeSet
	Size         int
	Colors       bitset.ColorSet
	StartPos     Point
	StartNodeID  int
	MaxSteps     int
	fieldCount   int
}

// AmountOfNodes is the number of regions in the graph.
func (gb *GameBoard) AmountOfNodes() int { return len(gb.Nodes) }

// AmountOfFields is boardSize^2, the number of grid cells.
func (gb *GameBoard) AmountOfFields() int { return gb.fieldCount }

// WordCount is the NodeSet word width every bitmap derived from this
// board must use.
func (gb *GameBoard) WordCount() int { return bitset.WordCount(len(gb.Nodes)) }

var neighborDeltas = [4]Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}

// NewGameBoard builds the region graph from a color grid (§4.1). grid is
// indexed grid[y][x]; every row must have the same length as the
// outer slice (a square board). maxSteps <= 0 selects the spec default
// of floor(0.30 * boardSize * colorCount).
func NewGameBoard(grid [][]Color, startPos Point, maxSteps int) (*GameBoard, error) {
	size := len(grid)
	if size == 0 {
		return nil, errors.New("board: empty grid")
	}
	for y, row := range grid {
		if len(row) != size {
			return nil, errors.Errorf("board: row %d has length %d, want square board of size %d", y, len(row), size)
		}
	}
	if startPos.X < 0 || startPos.X >= size || startPos.Y < 0 || startPos.Y >= size {
		return nil, errors.Errorf("board: start position %+v out of bounds for size %d", startPos, size)
	}

	regionID := make([][]int, size)
	for y := range regionID {
		regionID[y] = make([]int, size)
		for x := range regionID[y] {
			regionID[y][x] = -1
		}
	}

	var nodes []*Node
	var colorsPresent bitset.ColorSet
	stack := make([]Point, 0, size*size)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if regionID[y][x] != -1 {
				continue
			}
			c := grid[y][x]
			id := len(nodes)
			stack = stack[:0]
			stack = append(stack, Point{X: x, Y: y})
			regionID[y][x] = id
			var fields []Point
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				fields = append(fields, p)
				for _, d := range neighborDeltas {
					nx, ny := p.X+d.X, p.Y+d.Y
					if nx < 0 || nx >= size || ny < 0 || ny >= size {
						continue
					}
					if regionID[ny][nx] != -1 || grid[ny][nx] != c {
						continue
					}
					regionID[ny][nx] = id
					stack = append(stack, Point{X: nx, Y: ny})
				}
			}
			nodes = append(nodes, &Node{ID: id, Color: c, OccupiedFields: fields})
			colorsPresent = colorsPresent.Set(int(c))
		}
	}

	n := len(nodes)
	if colorsPresent.Count() < 2 || colorsPresent.Count() > MaxColor {
		return nil, errors.Errorf("board: color count %d out of range [2, %d]", colorsPresent.Count(), MaxColor)
	}

	for _, node := range nodes {
		node.BorderingNodes = bitset.NewNodeSet(n)
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			id := regionID[y][x]
			for _, d := range neighborDeltas {
				nx, ny := x+d.X, y+d.Y
				if nx < 0 || nx >= size || ny < 0 || ny >= size {
					continue
				}
				nid := regionID[ny][nx]
				if nid != id {
					nodes[id].BorderingNodes.Set(nid)
				}
			}
		}
	}

	var nodesByColor [MaxColor + 1]bitset.NodeSet
	for c := 0; c <= MaxColor; c++ {
		nodesByColor[c] = bitset.NewNodeSet(n)
	}
	for _, node := range nodes {
		nodesByColor[node.Color].Set(node.ID)
	}

	if maxSteps <= 0 {
		maxSteps = int(0.30 * float64(size) * float64(colorsPresent.Count()))
		if maxSteps < 1 {
			maxSteps = 1
		}
	}
	if maxSteps < 1 {
		return nil, errors.Errorf("board: maximumSteps must be >= 1, got %d", maxSteps)
	}

	return &GameBoard{
		Nodes:        nodes,
		NodesByColor: nodesByColor,
		Size:         size,
		Colors:       colorsPresent,
		StartPos:     startPos,
		StartNodeID:  regionID[startPos.Y][startPos.X],
		MaxSteps:     maxSteps,
		fieldCount:   size * size,
	}, nil
}

// WithUnboundedSteps returns a shallow copy of gb with MaxSteps raised to
// effectively unlimited. The A* driver in package solver never consults
// MaxSteps (per spec §6, "the solver uses an unbounded copy internally");
// MaxSteps exists on GameBoard purely as external-interface metadata for
// callers that want to cap a legacy bounded search of their own.
func (gb *GameBoard) WithUnboundedSteps() *GameBoard {
	cp := *gb
	cp.MaxSteps = 1 << 30
	return &cp
}
