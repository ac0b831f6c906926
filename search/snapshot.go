package search

import (
	"github.com/katalvlaran/pathviz/grid"
)

// Snapshot is an immutable view of one search round: which node was expanded
// and which nodes sit in the open and closed collections afterwards. It holds
// positions only, so a renderer can recolor the grid without touching engine
// state.
type Snapshot struct {
	// Step is the 1-based round number.
	Step int
	// Mode is the algorithm that produced the round.
	Mode Mode
	// Current is the node expanded (A*, Dijkstra) or dequeued (BFS).
	Current grid.Position
	// Open lists the frontier in selection order; for BFS this is the queue.
	Open []grid.Position
	// Closed lists expanded nodes (A*, Dijkstra) or visited nodes (BFS) in the
	// order they joined the set.
	Closed []grid.Position

	open   map[grid.Position]struct{}
	closed map[grid.Position]struct{}
}

// InOpen reports whether p was in the open set (queue, for BFS).
func (s Snapshot) InOpen(p grid.Position) bool {
	_, ok := s.open[p]
	return ok
}

// InClosed reports whether p was in the closed (visited) set.
func (s Snapshot) InClosed(p grid.Position) bool {
	_, ok := s.closed[p]
	return ok
}

// newSnapshot copies the run's collections into an independent Snapshot.
func newSnapshot(step int, mode Mode, current *grid.Node, open, closed []*grid.Node) Snapshot {
	s := Snapshot{
		Step:    step,
		Mode:    mode,
		Current: current.Position(),
		Open:    make([]grid.Position, len(open)),
		Closed:  make([]grid.Position, len(closed)),
		open:    make(map[grid.Position]struct{}, len(open)),
		closed:  make(map[grid.Position]struct{}, len(closed)),
	}
	for i, n := range open {
		p := n.Position()
		s.Open[i] = p
		s.open[p] = struct{}{}
	}
	for i, n := range closed {
		p := n.Position()
		s.Closed[i] = p
		s.closed[p] = struct{}{}
	}

	return s
}

// Result is the terminal outcome of a run.
type Result struct {
	Mode   Mode
	Status Status
	// Start and Goal are zero positions when the endpoints were missing.
	Start, Goal grid.Position
	// Path runs from start to goal inclusive; nil unless Status is StatusFound.
	Path []*grid.Node
	// Cost is the sum of entered-node costs along Path.
	Cost float64
	// Hops is len(Path)-1, or 0 without a path.
	Hops int
	// Steps is the number of snapshots emitted.
	Steps int
	// Expanded counts nodes taken off the frontier, including a goal that
	// ended the run.
	Expanded int
}

// Found reports whether the run reached the goal.
func (r Result) Found() bool { return r.Status == StatusFound }

// Positions returns the path as positions.
func (r Result) Positions() []grid.Position {
	if r.Path == nil {
		return nil
	}
	out := make([]grid.Position, len(r.Path))
	for i, n := range r.Path {
		out[i] = n.Position()
	}
	return out
}
