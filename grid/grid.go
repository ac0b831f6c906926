package grid

import (
	"fmt"
	"math"
)

// neighborOffsets lists adjacency in the order nodes report it: west, east,
// south, north.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// New builds a width×height grid. Every node starts with DefaultCost and a
// reset search state, and is wired to its in-bounds orthogonal neighbors.
// Returns ErrBadDimensions if width or height is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		nodes:  make([]*Node, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.nodes[g.index(x, y)] = &Node{
				position: Position{X: x, Y: y},
				cost:     DefaultCost,
				g:        math.Inf(1),
				owner:    g,
			}
		}
	}
	// Wire adjacency in a second pass so every node exists.
	for _, n := range g.nodes {
		n.neighbors = make([]*Node, 0, len(neighborOffsets))
		for _, d := range neighborOffsets {
			nx, ny := n.position.X+d[0], n.position.Y+d[1]
			if !g.InBounds(nx, ny) {
				continue
			}
			n.neighbors = append(n.neighbors, g.nodes[g.index(nx, ny)])
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of nodes, Width×Height.
func (g *Grid) Len() int { return len(g.nodes) }

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Index returns the row-major index of p, or ErrOutOfBounds.
func (g *Grid) Index(p Position) (int, error) {
	if !g.InBounds(p.X, p.Y) {
		return 0, fmt.Errorf("%w: %s in %d×%d grid", ErrOutOfBounds, p, g.width, g.height)
	}
	return g.index(p.X, p.Y), nil
}

// Coordinate converts a row-major index back to a Position.
func (g *Grid) Coordinate(idx int) Position {
	return Position{X: idx % g.width, Y: idx / g.width}
}

// Node returns the node at p, or ErrOutOfBounds. Positions are never clamped.
func (g *Grid) Node(p Position) (*Node, error) {
	idx, err := g.Index(p)
	if err != nil {
		return nil, err
	}
	return g.nodes[idx], nil
}

// At is shorthand for Node(Position{x, y}).
func (g *Grid) At(x, y int) (*Node, error) {
	return g.Node(Position{X: x, Y: y})
}

// Nodes returns every node in row-major order. The slice is a copy; the nodes
// are shared.
func (g *Grid) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Contains reports whether n belongs to this grid.
func (g *Grid) Contains(n *Node) bool {
	return n != nil && n.owner == g
}

// SetCost assigns the traversal cost of the node at p, clamped to
// [MinCost, MaxCost]. Only the target node changes.
func (g *Grid) SetCost(p Position, value float64) error {
	if math.IsNaN(value) {
		return fmt.Errorf("%w: cost for %s", ErrInvalidCost, p)
	}
	n, err := g.Node(p)
	if err != nil {
		return err
	}
	n.cost = ClampCost(value)
	return nil
}

// AdjustCost adds delta to the cost of the node at p, clamps the result and
// returns the new cost.
func (g *Grid) AdjustCost(p Position, delta float64) (float64, error) {
	if math.IsNaN(delta) {
		return 0, fmt.Errorf("%w: delta for %s", ErrInvalidCost, p)
	}
	n, err := g.Node(p)
	if err != nil {
		return 0, err
	}
	n.cost = ClampCost(n.cost + delta)
	return n.cost, nil
}

// ResetSearch clears G, H and Parent on every node without touching costs.
// Calling it twice is the same as calling it once.
func (g *Grid) ResetSearch() {
	for _, n := range g.nodes {
		n.ResetSearch()
	}
}
