package search_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// BoardSuite covers start/goal selection and the single-active-run rule.
type BoardSuite struct {
	suite.Suite
	board *search.Board
}

func (s *BoardSuite) SetupTest() {
	g, err := grid.New(4, 4)
	require.NoError(s.T(), err)
	s.board, err = search.NewBoard(g)
	require.NoError(s.T(), err)
}

// TestSelection sets, replaces and clears endpoints.
func (s *BoardSuite) TestSelection() {
	require.Nil(s.T(), s.board.Start())
	require.NoError(s.T(), s.board.SetStart(grid.Position{X: 0, Y: 0}))
	require.NoError(s.T(), s.board.SetStart(grid.Position{X: 1, Y: 0}))
	require.NoError(s.T(), s.board.SetGoal(grid.Position{X: 3, Y: 3}))
	require.Equal(s.T(), grid.Position{X: 1, Y: 0}, s.board.Start().Position())
	require.Equal(s.T(), grid.Position{X: 3, Y: 3}, s.board.Goal().Position())

	err := s.board.SetGoal(grid.Position{X: 4, Y: 0})
	require.True(s.T(), errors.Is(err, grid.ErrOutOfBounds))
	require.Equal(s.T(), grid.Position{X: 3, Y: 3}, s.board.Goal().Position(), "failed select keeps previous goal")

	require.NoError(s.T(), s.board.ClearGoal())
	require.Nil(s.T(), s.board.Goal())
}

// TestActiveRunRejectsChanges verifies ErrRunActive until the run ends.
func (s *BoardSuite) TestActiveRunRejectsChanges() {
	require.NoError(s.T(), s.board.SetStart(grid.Position{X: 0, Y: 0}))
	require.NoError(s.T(), s.board.SetGoal(grid.Position{X: 3, Y: 3}))

	run, err := s.board.Run(search.AStar)
	require.NoError(s.T(), err)
	require.True(s.T(), s.board.Active())

	require.ErrorIs(s.T(), s.board.SetStart(grid.Position{X: 1, Y: 1}), search.ErrRunActive)
	require.ErrorIs(s.T(), s.board.SetGoal(grid.Position{X: 1, Y: 1}), search.ErrRunActive)
	require.ErrorIs(s.T(), s.board.ClearStart(), search.ErrRunActive)
	require.ErrorIs(s.T(), s.board.Reset(), search.ErrRunActive)
	_, err = s.board.Run(search.BFS)
	require.ErrorIs(s.T(), err, search.ErrRunActive)

	// Costs stay editable during a run.
	c, err := s.board.AdjustCost(grid.Position{X: 2, Y: 2}, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4.0, c)

	drain(run)
	require.True(s.T(), run.Result().Found())
	require.False(s.T(), s.board.Active())
	require.NoError(s.T(), s.board.SetStart(grid.Position{X: 1, Y: 1}))
	require.NoError(s.T(), s.board.Reset())
}

// TestCloseReleases frees the board when a run is abandoned.
func (s *BoardSuite) TestCloseReleases() {
	require.NoError(s.T(), s.board.SetStart(grid.Position{X: 0, Y: 0}))
	require.NoError(s.T(), s.board.SetGoal(grid.Position{X: 3, Y: 3}))
	run, err := s.board.Run(search.Dijkstra)
	require.NoError(s.T(), err)
	_, ok := run.Next()
	require.True(s.T(), ok)

	run.Close()
	require.False(s.T(), s.board.Active())
	require.Equal(s.T(), search.StatusCancelled, run.Result().Status)
}

// TestMissingEndpointsReleaseAtOnce: no goal means no steps and no lock.
func (s *BoardSuite) TestMissingEndpointsReleaseAtOnce() {
	require.NoError(s.T(), s.board.SetStart(grid.Position{X: 0, Y: 0}))
	run, err := s.board.Run(search.BFS)
	require.NoError(s.T(), err)
	require.False(s.T(), s.board.Active())
	require.Equal(s.T(), search.StatusNoEndpoints, run.Result().Status)
	_, ok := run.Next()
	require.False(s.T(), ok)
}

// TestBadOptionReleases: a rejected option does not leave the board locked.
func (s *BoardSuite) TestBadOptionReleases() {
	_, err := s.board.Run(search.AStar, search.WithHeuristicWeight(-2))
	require.ErrorIs(s.T(), err, search.ErrOptionViolation)
	require.False(s.T(), s.board.Active())
}

// TestConcurrentSelection hammers the selection API from several goroutines.
func (s *BoardSuite) TestConcurrentSelection() {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.board.SetStart(grid.Position{X: i % 4, Y: j % 4})
				_ = s.board.SetGoal(grid.Position{X: j % 4, Y: i % 4})
				_ = s.board.Active()
			}
		}(i)
	}
	wg.Wait()
	require.NotNil(s.T(), s.board.Start())
	require.NotNil(s.T(), s.board.Goal())
}

func TestBoardSuite(t *testing.T) {
	suite.Run(t, new(BoardSuite))
}

func TestNewBoard_NilGrid(t *testing.T) {
	if _, err := search.NewBoard(nil); !errors.Is(err, search.ErrNilGrid) {
		t.Errorf("NewBoard(nil) error = %v; want ErrNilGrid", err)
	}
}
