// Package pathviz is a step-by-step pathfinding engine for weighted grids,
// built to drive visualizations of A*, Dijkstra and breadth-first search.
//
// What is pathviz?
//
//	A small library that keeps the search state observable:
//		• grid/   : W×H nodes, 4-connected, traversal cost 0..10 paid on entry
//		• search/ : A*, Dijkstra and BFS as cooperative step generators,
//		             immutable per-round snapshots, path reconstruction,
//		             and a Board that guards start/goal selection
//		• metrics/: Prometheus observer for finished runs
//		• logging/: zerolog logger construction
//		• config/ : PATHVIZ_* environment and .env loading
//
// The engine never sleeps and never draws. A caller pulls one round at a time
// with Search.Next (or ranges over Search.All), paints the snapshot however it
// likes and decides when to pull the next one. cmd/pathviz does exactly that
// in a terminal.
//
// Quick ASCII example (S start, G goal, # cost 10, * path):
//
//	S#G
//	***
//
// A* and Dijkstra walk around the expensive cell; BFS ignores cost and goes
// straight through it.
//
//	go run github.com/katalvlaran/pathviz/cmd/pathviz --width 3 --height 2 \
//	    --start 0,0 --goal 2,0 --cost 1,0=10 --delay 0
package pathviz
