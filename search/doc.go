// Package search runs A*, Dijkstra and breadth-first search over a grid.Grid
// one round at a time, exposing enough state for a renderer to animate them.
//
// What
//
//   - Run prepares a Search; each Next call performs one round (select a node,
//     expand it) and returns an immutable Snapshot of the open and closed
//     collections. All wraps Next as an iter.Seq.
//   - The terminal Result carries the Status, the reconstructed path, its cost
//     and hop count, and progress counters.
//   - Solve drives a Search to completion for batch use.
//   - Board holds the start/goal selection and allows one active run per grid.
//
// Modes
//
//   - AStar:    pick the open node with lowest F = G + H, where
//     H = Heuristic(node, goal) × HeuristicWeight.
//   - Dijkstra: pick the open node with lowest G; H is never set.
//   - BFS:      FIFO expansion; costs are ignored and G holds the hop depth.
//
// Determinism
//
//	The open set is an insertion-ordered list scanned linearly, and a node
//	only replaces the current best when its key is strictly lower. Ties
//	therefore go to the node discovered first. Neighbors are visited west,
//	east, south, north. Given the same grid and endpoints, runs are fully
//	reproducible. A heap would be faster on large grids but would change
//	which of several equal-cost paths is returned (never its cost).
//
// Pacing and cancellation
//
//	The engine performs no timing. Callers sleep between Next calls if they
//	want animation, or call Solve for an instant answer. Stopping early needs
//	no cleanup; Close marks the run cancelled and fires OnFinish.
//
// Hooks
//
//   - WithFilterNeighbor(fn): skip edges (impassable cells).
//   - WithOnExpand(fn):  each node taken off the frontier (except the goal).
//   - WithOnStep(fn):    each emitted Snapshot.
//   - WithOnFinish(fn):  the terminal Result, exactly once.
//   - WithObserver(o):   both of the above via the Observer interface.
//   - WithLogger(l):     zerolog tracing (debug: start/finish, trace: rounds).
//
// Outcomes
//
//   - StatusFound:       goal selected; Result.Path runs start → goal.
//   - StatusNotFound:    frontier exhausted.
//   - StatusNoEndpoints: start or goal missing; no snapshots.
//   - StatusCancelled:   closed before termination.
//
// Errors
//
//   - ErrNilGrid, ErrUnknownMode, ErrOptionViolation from Run and Solve.
//   - ErrRunActive from Board while a run is in progress.
//
// Complexity (N = W×H)
//
//   - A*, Dijkstra: O(N²) worst case with the linear open-set scan.
//   - BFS:          O(N).
//   - Memory:       O(N) per run, plus O(N) per retained Snapshot.
package search
