package grid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("grid: width and height must be positive")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrInvalidCost indicates a NaN traversal cost.
	ErrInvalidCost = errors.New("grid: cost must be a number")
)

// Traversal cost policy.
const (
	// MinCost is the lowest cost a node can carry.
	MinCost = 0.0
	// MaxCost is the highest cost a node can carry.
	MaxCost = 10.0
	// DefaultCost is assigned to every node on construction.
	DefaultCost = 1.0
)

// Position addresses a node by column X and row Y.
type Position struct {
	X, Y int
}

// String formats p as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// ClampCost limits v to [MinCost, MaxCost].
// NaN is returned unchanged; callers reject it.
func ClampCost(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	return math.Min(MaxCost, math.Max(MinCost, v))
}

// Node is a single grid cell.
//
// position and neighbors are fixed for the lifetime of the grid. cost is
// configuration. g, h and parent are transient search state: they are reset
// before every run and only meaningful while or after a run.
type Node struct {
	position  Position
	cost      float64
	g, h      float64
	parent    *Node
	neighbors []*Node
	owner     *Grid
}

// Position returns the node's coordinates.
func (n *Node) Position() Position { return n.position }

// X returns the node's column.
func (n *Node) X() int { return n.position.X }

// Y returns the node's row.
func (n *Node) Y() int { return n.position.Y }

// Cost returns the cost of entering this node.
func (n *Node) Cost() float64 { return n.cost }

// G returns the best known cumulative cost from the start.
// It is +Inf for nodes not yet reached in the current run.
func (n *Node) G() float64 { return n.g }

// H returns the heuristic estimate to the goal (A* only).
func (n *Node) H() float64 { return n.h }

// F returns G + H. It is always derived, never stored.
func (n *Node) F() float64 { return n.g + n.h }

// Parent returns the predecessor on the best known path, or nil.
func (n *Node) Parent() *Node { return n.parent }

// Neighbors returns the adjacent nodes in west, east, south, north order,
// skipping directions that fall outside the grid. The returned slice is a copy.
func (n *Node) Neighbors() []*Node {
	out := make([]*Node, len(n.neighbors))
	copy(out, n.neighbors)
	return out
}

// Degree returns the number of neighbors without allocating.
func (n *Node) Degree() int { return len(n.neighbors) }

// Neighbor returns the i-th neighbor in Neighbors order.
func (n *Node) Neighbor(i int) *Node { return n.neighbors[i] }

// SetG records the cumulative cost from the start. Used by search engines.
func (n *Node) SetG(g float64) { n.g = g }

// SetH records the heuristic estimate. Used by search engines.
func (n *Node) SetH(h float64) { n.h = h }

// SetParent records the predecessor. Used by search engines.
func (n *Node) SetParent(p *Node) { n.parent = p }

// ResetSearch restores the run-initial state: G=+Inf, H=0, Parent=nil.
// The traversal cost is left untouched.
func (n *Node) ResetSearch() {
	n.g = math.Inf(1)
	n.h = 0
	n.parent = nil
}

// String renders the node and its search state for debugging.
func (n *Node) String() string {
	return fmt.Sprintf("%s c=%.0f g=%.1f h=%.1f f=%.1f", n.position, n.cost, n.g, n.h, n.F())
}

// Grid is a rectangular lattice of 4-connected nodes. Its shape and adjacency
// are immutable once built; only costs and search state change.
type Grid struct {
	width, height int
	nodes         []*Node // row-major: nodes[y*width+x]
}
