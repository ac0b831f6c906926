package grid

import (
	"gonum.org/v1/gonum/graph/simple"
)

// ToWeightedGraph converts the grid into a gonum weighted directed graph.
// Each node becomes a vertex whose ID is its row-major index. For every
// neighbor pair u→v an edge of weight Cost(v) is added, since cost is paid on
// entering a cell. Weights reflect costs at call time.
// Complexity: O(W×H) vertices and up to 4×W×H edges.
func (g *Grid) ToWeightedGraph() *simple.WeightedDirectedGraph {
	wg := simple.NewWeightedDirectedGraph(0, 0)
	for i := range g.nodes {
		wg.AddNode(simple.Node(int64(i)))
	}
	for i, n := range g.nodes {
		from := simple.Node(int64(i))
		for _, nb := range n.neighbors {
			to := simple.Node(int64(g.index(nb.position.X, nb.position.Y)))
			wg.SetWeightedEdge(simple.WeightedEdge{F: from, T: to, W: nb.cost})
		}
	}

	return wg
}
