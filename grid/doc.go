// Package grid models a rectangular 2D lattice of weighted cells as a graph
// for step-by-step pathfinding.
//
// What:
//
//   - Grid owns Width×Height nodes addressed by Position{X, Y}.
//   - Each Node knows its four orthogonal neighbors (west, east, south, north),
//     wired once at construction and never changed afterwards.
//   - Each Node carries a traversal cost in [MinCost, MaxCost] (the price of
//     entering the cell) plus the transient search fields G, H and Parent that
//     search engines mutate in place.
//   - ToWeightedGraph exports the lattice as a gonum weighted directed graph.
//
// Costs:
//
//   - SetCost and AdjustCost clamp into [0, 10]. Coordinates are never clamped:
//     an out-of-range Position yields ErrOutOfBounds.
//
// Complexity:
//
//   - New:             O(W×H) time and memory.
//   - Node / At:       O(1).
//   - ResetSearch:     O(W×H).
//   - ToWeightedGraph: O(W×H) vertices, O(4×W×H) edges.
//
// Concurrency:
//
//	A Grid is not safe for concurrent mutation. Search engines write node
//	fields in place, so only one run may be active per Grid at a time.
//	search.Board enforces that for interactive callers.
//
// Errors:
//
//   - ErrBadDimensions: width or height is not positive.
//   - ErrOutOfBounds:   position lies outside the grid.
//   - ErrInvalidCost:   cost value is NaN.
package grid
