package search

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/pathviz/grid"
)

// Sentinel errors for search setup. Search outcomes themselves are never
// errors; they are reported through Result.Status.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownMode is returned for a Mode outside AStar, Dijkstra, BFS.
	ErrUnknownMode = errors.New("search: unknown mode")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrRunActive is returned by Board while a run is in progress.
	ErrRunActive = errors.New("search: a run is already active")
)

// Mode selects the traversal algorithm.
type Mode int

const (
	// AStar is best-first search on F = G + H.
	AStar Mode = iota
	// Dijkstra is best-first search on G alone.
	Dijkstra
	// BFS is unweighted breadth-first expansion; costs are ignored.
	BFS
)

var modeNames = [...]string{AStar: "astar", Dijkstra: "dijkstra", BFS: "bfs"}

// String returns the lower-case mode name.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m >= AStar && m <= BFS
}

// ParseMode accepts "astar", "a*", "dijkstra" or "bfs", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "astar", "a*", "a-star":
		return AStar, nil
	case "dijkstra", "dijkstras":
		return Dijkstra, nil
	case "bfs":
		return BFS, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Status describes how a run ended.
type Status int

const (
	// StatusRunning means the run has not terminated yet.
	StatusRunning Status = iota
	// StatusFound means the goal was selected; the path is available.
	StatusFound
	// StatusNotFound means the frontier emptied before reaching the goal.
	StatusNotFound
	// StatusNoEndpoints means start or goal was missing; no round was run.
	StatusNoEndpoints
	// StatusCancelled means the caller closed the run before it terminated.
	StatusCancelled
)

var statusNames = [...]string{
	StatusRunning:     "running",
	StatusFound:       "found",
	StatusNotFound:    "not_found",
	StatusNoEndpoints: "no_endpoints",
	StatusCancelled:   "cancelled",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// Heuristic estimates the remaining cost between two positions.
type Heuristic func(from, to grid.Position) float64

// Observer receives neutral run data; renderers map it onto colors and labels.
type Observer interface {
	// OnStep is called once per round with that round's snapshot.
	OnStep(Snapshot)
	// OnFinish is called exactly once when the run terminates or is closed.
	OnFinish(Result)
}

// Option configures a run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Run.
type Option func(*Options)

// Options holds parameters and callbacks for a run.
type Options struct {
	// HeuristicWeight scales H for A*. 0 degenerates A* into Dijkstra;
	// values above 1 are inadmissible and trade optimality for speed.
	HeuristicWeight float64

	// Heuristic estimates the distance to the goal. Defaults to Manhattan.
	Heuristic Heuristic

	// FilterNeighbor can skip edges by returning false. Called for each
	// edge current→neighbor before relaxation or enqueueing.
	FilterNeighbor func(from, to *grid.Node) bool

	// OnExpand is called with each node moved to the closed set
	// (dequeued, for BFS) before its neighbors are relaxed.
	OnExpand func(n *grid.Node)

	// OnStep is called with each emitted snapshot.
	OnStep func(Snapshot)

	// OnFinish is called once with the terminal result.
	OnFinish func(Result)

	// Logger traces runs at debug and trace level.
	Logger zerolog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - HeuristicWeight 1
//   - Manhattan heuristic
//   - no filtering (all neighbors allowed)
//   - no-op hooks
//   - a disabled logger
func DefaultOptions() Options {
	return Options{
		HeuristicWeight: 1,
		Heuristic:       Manhattan,
		FilterNeighbor:  func(_, _ *grid.Node) bool { return true },
		OnExpand:        func(*grid.Node) {},
		OnStep:          func(Snapshot) {},
		OnFinish:        func(Result) {},
		Logger:          zerolog.Nop(),
	}
}

// WithHeuristicWeight sets the A* heuristic multiplier.
//
//	w >= 0: accepted (0 = Dijkstra-equivalent, >1 = greedy)
//	w < 0, NaN or Inf: ErrOptionViolation
func WithHeuristicWeight(w float64) Option {
	return func(o *Options) {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			o.err = fmt.Errorf("%w: heuristic weight must be a finite value >= 0 (%v)", ErrOptionViolation, w)
			return
		}
		o.HeuristicWeight = w
	}
}

// WithHeuristic replaces the Manhattan heuristic. nil is a violation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic is nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithFilterNeighbor skips neighbors when fn returns false, which lets a
// caller model impassable cells without changing the grid.
func WithFilterNeighbor(fn func(from, to *grid.Node) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithOnExpand registers a callback for each expanded node.
func WithOnExpand(fn func(n *grid.Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = chain1(o.OnExpand, fn)
		}
	}
}

// WithOnStep registers a callback for each snapshot.
func WithOnStep(fn func(Snapshot)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = chain1(o.OnStep, fn)
		}
	}
}

// WithOnFinish registers a callback for the terminal result.
func WithOnFinish(fn func(Result)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinish = chain1(o.OnFinish, fn)
		}
	}
}

// WithObserver wires an Observer into the OnStep and OnFinish hooks.
// Several observers may be registered; they run in registration order.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs == nil {
			o.err = fmt.Errorf("%w: observer is nil", ErrOptionViolation)
			return
		}
		o.OnStep = chain1(o.OnStep, obs.OnStep)
		o.OnFinish = chain1(o.OnFinish, obs.OnFinish)
	}
}

// WithLogger sets the logger used for run tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

func chain1[T any](first, next func(T)) func(T) {
	if first == nil {
		return next
	}
	return func(v T) {
		first(v)
		next(v)
	}
}
