package search

import (
	"math"

	"github.com/katalvlaran/pathviz/grid"
)

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|. On a 4-connected grid it is
// admissible (and consistent) while every traversal cost is at least 1.
func Manhattan(a, b grid.Position) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}

// Zero is the null heuristic; A* with Zero behaves like Dijkstra.
func Zero(_, _ grid.Position) float64 { return 0 }

// Reconstruct walks parent links from goal until a node without a parent and
// returns the chain reversed, from that root to goal inclusive.
// A nil goal yields nil. If stale state ever forms a parent cycle, the walk
// stops before revisiting a node.
func Reconstruct(goal *grid.Node) []*grid.Node {
	if goal == nil {
		return nil
	}
	path := []*grid.Node{}
	seen := make(map[*grid.Node]struct{})
	for cur := goal; cur != nil; cur = cur.Parent() {
		if _, dup := seen[cur]; dup {
			break
		}
		seen[cur] = struct{}{}
		path = append(path, cur)
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// PathCost sums the traversal cost of every node after the first, i.e. the
// price of walking the path when cost is paid on entry.
func PathCost(path []*grid.Node) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += path[i].Cost()
	}
	return total
}
