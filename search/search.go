package search

import (
	"context"
	"fmt"
	"iter"
	"slices"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/pathviz/grid"
)

// Search is one run of an algorithm over a grid. It is a cooperative step
// generator: each call to Next performs exactly one round and suspends.
// The engine never sleeps; pacing belongs to the caller.
//
// Node search fields are mutated in place, so only one Search may be active
// per grid. A Search is not safe for concurrent use.
type Search struct {
	grid        *grid.Grid
	start, goal *grid.Node
	mode        Mode
	opts        Options
	log         zerolog.Logger

	// open is the frontier in insertion order (the FIFO queue, for BFS).
	open   []*grid.Node
	inOpen map[*grid.Node]bool
	// closed holds expanded nodes, or visited nodes for BFS.
	closed   []*grid.Node
	inClosed map[*grid.Node]bool

	step     int
	expanded int
	done     bool
	result   Result
}

// Run prepares a search from start to goal over g and returns it ready for
// the first Next call. No round is performed yet.
//
// Errors are reserved for misuse: ErrNilGrid, ErrUnknownMode and
// ErrOptionViolation. A nil start or goal, or one that does not belong to g,
// is not an error: the returned Search is already done with
// StatusNoEndpoints and yields no snapshots.
func Run(g *grid.Grid, start, goal *grid.Node, mode Mode, opts ...Option) (*Search, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s := &Search{
		grid:  g,
		start: start,
		goal:  goal,
		mode:  mode,
		opts:  o,
		log:   o.Logger.With().Str("mode", mode.String()).Logger(),
	}
	if !g.Contains(start) || !g.Contains(goal) {
		s.log.Debug().Msg("search skipped: start or goal not set")
		s.finish(StatusNoEndpoints)
		return s, nil
	}

	s.init()
	s.log.Debug().
		Stringer("start", start.Position()).
		Stringer("goal", goal.Position()).
		Float64("weight", o.HeuristicWeight).
		Msg("search started")

	return s, nil
}

// Solve runs a search to completion and returns its result. ctx is checked
// between rounds; on cancellation the run is closed and ctx.Err() returned
// together with the StatusCancelled result.
func Solve(ctx context.Context, g *grid.Grid, start, goal *grid.Node, mode Mode, opts ...Option) (Result, error) {
	s, err := Run(g, start, goal, mode, opts...)
	if err != nil {
		return Result{}, err
	}
	for {
		select {
		case <-ctx.Done():
			s.Close()
			return s.Result(), ctx.Err()
		default:
		}
		if _, ok := s.Next(); !ok {
			return s.Result(), nil
		}
	}
}

// init resets every node, seeds the start and the frontier.
func (s *Search) init() {
	n := s.grid.Len()
	s.open = make([]*grid.Node, 0, n)
	s.inOpen = make(map[*grid.Node]bool, n)
	s.closed = make([]*grid.Node, 0, n)
	s.inClosed = make(map[*grid.Node]bool, n)

	s.grid.ResetSearch()
	s.start.SetG(0)
	switch s.mode {
	case AStar:
		s.start.SetH(s.opts.Heuristic(s.start.Position(), s.goal.Position()))
	case BFS:
		s.markClosed(s.start)
	}
	s.pushOpen(s.start)
}

// Next performs one round and returns its snapshot. It returns false when the
// run has terminated (goal selected, frontier exhausted, missing endpoints or
// closed) and keeps returning false afterwards. Selecting the goal ends the
// run without emitting a snapshot for that round.
func (s *Search) Next() (Snapshot, bool) {
	if s.done {
		return Snapshot{}, false
	}
	if len(s.open) == 0 {
		s.finish(StatusNotFound)
		return Snapshot{}, false
	}

	var current *grid.Node
	if s.mode == BFS {
		current = s.dequeue()
	} else {
		current = s.popBest()
	}
	s.expanded++
	if current == s.goal {
		s.finish(StatusFound)
		return Snapshot{}, false
	}
	s.opts.OnExpand(current)

	if s.mode == BFS {
		s.visitNeighbors(current)
	} else {
		s.markClosed(current)
		s.relax(current)
	}

	s.step++
	snap := newSnapshot(s.step, s.mode, current, s.open, s.closed)
	s.log.Trace().
		Int("step", s.step).
		Stringer("current", current.Position()).
		Int("open", len(s.open)).
		Int("closed", len(s.closed)).
		Msg("round")
	s.opts.OnStep(snap)

	return snap, true
}

// All returns the remaining rounds as a range-over-func sequence. Breaking out
// of the loop leaves the run suspended; it can be resumed or closed.
func (s *Search) All() iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		for {
			snap, ok := s.Next()
			if !ok || !yield(snap) {
				return
			}
		}
	}
}

// Close abandons an unfinished run with StatusCancelled. Closing a finished
// run does nothing.
func (s *Search) Close() {
	if !s.done {
		s.finish(StatusCancelled)
	}
}

// Done reports whether the run has terminated.
func (s *Search) Done() bool { return s.done }

// Result returns the terminal outcome, or a StatusRunning result carrying the
// progress counters while the run is still going.
func (s *Search) Result() Result {
	if !s.done {
		return Result{Mode: s.mode, Status: StatusRunning, Steps: s.step, Expanded: s.expanded}
	}
	return s.result
}

// Mode returns the algorithm of this run.
func (s *Search) Mode() Mode { return s.mode }

// Grid returns the grid being searched.
func (s *Search) Grid() *grid.Grid { return s.grid }

// pushOpen appends n to the frontier.
func (s *Search) pushOpen(n *grid.Node) {
	s.open = append(s.open, n)
	s.inOpen[n] = true
}

// markClosed adds n to the closed (visited) set.
func (s *Search) markClosed(n *grid.Node) {
	s.closed = append(s.closed, n)
	s.inClosed[n] = true
}

// dequeue pops the head of the BFS queue.
func (s *Search) dequeue() *grid.Node {
	n := s.open[0]
	s.open = s.open[1:]
	delete(s.inOpen, n)
	return n
}

// popBest removes and returns the open node with the lowest key: F for A*,
// G for Dijkstra. The scan keeps the first minimum it meets, so ties go to
// the node that entered the frontier earliest.
func (s *Search) popBest() *grid.Node {
	best := 0
	bestKey := s.key(s.open[0])
	for i := 1; i < len(s.open); i++ {
		if k := s.key(s.open[i]); k < bestKey {
			best, bestKey = i, k
		}
	}
	n := s.open[best]
	s.open = slices.Delete(s.open, best, best+1)
	delete(s.inOpen, n)
	return n
}

func (s *Search) key(n *grid.Node) float64 {
	if s.mode == AStar {
		return n.F()
	}
	return n.G()
}

// relax offers current as a predecessor to each neighbor not yet closed.
func (s *Search) relax(current *grid.Node) {
	goal := s.goal.Position()
	for i := 0; i < current.Degree(); i++ {
		nb := current.Neighbor(i)
		if s.inClosed[nb] || !s.opts.FilterNeighbor(current, nb) {
			continue
		}
		tentative := current.G() + nb.Cost()
		if s.inOpen[nb] && tentative >= nb.G() {
			continue
		}
		nb.SetG(tentative)
		if s.mode == AStar {
			nb.SetH(s.opts.Heuristic(nb.Position(), goal) * s.opts.HeuristicWeight)
		}
		nb.SetParent(current)
		if !s.inOpen[nb] {
			s.pushOpen(nb)
		}
	}
}

// visitNeighbors enqueues every unvisited neighbor of current. G records the
// hop depth.
func (s *Search) visitNeighbors(current *grid.Node) {
	for i := 0; i < current.Degree(); i++ {
		nb := current.Neighbor(i)
		if s.inClosed[nb] || !s.opts.FilterNeighbor(current, nb) {
			continue
		}
		nb.SetParent(current)
		nb.SetG(current.G() + 1)
		s.markClosed(nb)
		s.pushOpen(nb)
	}
}

// finish records the terminal result, fires OnFinish and drops run state.
func (s *Search) finish(status Status) {
	s.done = true
	res := Result{
		Mode:     s.mode,
		Status:   status,
		Steps:    s.step,
		Expanded: s.expanded,
	}
	if s.grid.Contains(s.start) {
		res.Start = s.start.Position()
	}
	if s.grid.Contains(s.goal) {
		res.Goal = s.goal.Position()
	}
	if status == StatusFound {
		res.Path = Reconstruct(s.goal)
		res.Cost = PathCost(res.Path)
		res.Hops = len(res.Path) - 1
	}
	s.result = res
	s.open, s.inOpen, s.closed, s.inClosed = nil, nil, nil, nil

	s.log.Debug().
		Stringer("status", status).
		Int("steps", res.Steps).
		Int("expanded", res.Expanded).
		Int("hops", res.Hops).
		Float64("cost", res.Cost).
		Msg("search finished")
	s.opts.OnFinish(res)
}
