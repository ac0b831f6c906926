// Package metrics exports search runs as Prometheus metrics.
//
// A Recorder implements search.Observer, so it is attached to a run with
// search.WithObserver. Every series is labelled by mode ("astar",
// "dijkstra", "bfs"):
//
//   - pathviz_runs_total{mode,status}   finished runs by terminal status
//   - pathviz_steps{mode}               rounds per finished run
//   - pathviz_expanded_nodes_total      nodes taken off the frontier
//   - pathviz_path_cost{mode}           cost of found paths
//   - pathviz_open_set_size{mode}       frontier size after the latest round
//
// Metrics are registered on the Registerer passed to NewRecorder, never on
// the global default registry.
package metrics
