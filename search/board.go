package search

import (
	"slices"
	"sync"

	"github.com/katalvlaran/pathviz/grid"
)

// Board pairs a grid with the interactive selection a visualizer edits: the
// start and goal nodes, and whether a run is in progress. Selection changes,
// resets and new runs are rejected with ErrRunActive while a run started by
// the board is unfinished.
//
// Board's methods are safe for concurrent use. The Search it returns is not;
// drive it from one goroutine.
type Board struct {
	mu          sync.Mutex
	grid        *grid.Grid
	start, goal *grid.Node
	running     bool
}

// NewBoard wraps g. Returns ErrNilGrid for a nil grid.
func NewBoard(g *grid.Grid) (*Board, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	return &Board{grid: g}, nil
}

// Grid returns the underlying grid.
func (b *Board) Grid() *grid.Grid { return b.grid }

// SetStart selects the start node.
func (b *Board) SetStart(p grid.Position) error {
	return b.selectNode(&b.start, p)
}

// SetGoal selects the goal node.
func (b *Board) SetGoal(p grid.Position) error {
	return b.selectNode(&b.goal, p)
}

// ClearStart unsets the start node.
func (b *Board) ClearStart() error {
	return b.clearNode(&b.start)
}

// ClearGoal unsets the goal node.
func (b *Board) ClearGoal() error {
	return b.clearNode(&b.goal)
}

func (b *Board) selectNode(dst **grid.Node, p grid.Position) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.running {
		return ErrRunActive
	}
	n, err := b.grid.Node(p)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

func (b *Board) clearNode(dst **grid.Node) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.running {
		return ErrRunActive
	}
	*dst = nil
	return nil
}

// Start returns the selected start node, or nil.
func (b *Board) Start() *grid.Node {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.start
}

// Goal returns the selected goal node, or nil.
func (b *Board) Goal() *grid.Node {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.goal
}

// Active reports whether a run started by this board is unfinished.
func (b *Board) Active() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.running
}

// SetCost forwards to the grid. Costs may change at any time; a change made
// during a run affects only relaxations that happen after it.
func (b *Board) SetCost(p grid.Position, value float64) error {
	return b.grid.SetCost(p, value)
}

// AdjustCost forwards to the grid and returns the new cost.
func (b *Board) AdjustCost(p grid.Position, delta float64) (float64, error) {
	return b.grid.AdjustCost(p, delta)
}

// Reset clears transient search state on every node, keeping costs and the
// start/goal selection.
func (b *Board) Reset() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.running {
		return ErrRunActive
	}
	b.grid.ResetSearch()
	return nil
}

// Run starts a search between the selected endpoints. The board stays active
// until the search terminates or is closed. Missing endpoints are not an
// error: the search comes back finished with StatusNoEndpoints and the board
// is released at once.
func (b *Board) Run(mode Mode, opts ...Option) (*Search, error) {
	b.mu.Lock()
	if b.running {
		b.mu.Unlock()
		return nil, ErrRunActive
	}
	b.running = true
	start, goal := b.start, b.goal
	b.mu.Unlock()

	all := append(slices.Clone(opts), WithOnFinish(func(Result) { b.release() }))
	s, err := Run(b.grid, start, goal, mode, all...)
	if err != nil {
		b.release()
		return nil, err
	}
	return s, nil
}

func (b *Board) release() {
	b.mu.Lock()
	b.running = false
	b.mu.Unlock()
}
