package metrics_test

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/metrics"
	"github.com/katalvlaran/pathviz/search"
)

func newRecorder(t *testing.T) (*prometheus.Registry, *metrics.Recorder) {
	t.Helper()
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	require.NoError(t, err)
	return reg, rec
}

func TestRecorder_FinishedRuns(t *testing.T) {
	reg, rec := newRecorder(t)

	g, err := grid.New(3, 1)
	require.NoError(t, err)
	start, _ := g.At(0, 0)
	goal, _ := g.At(2, 0)

	res, err := search.Solve(context.Background(), g, start, goal, search.AStar, search.WithObserver(rec))
	require.NoError(t, err)
	require.True(t, res.Found())

	_, err = search.Solve(context.Background(), g, start, nil, search.BFS, search.WithObserver(rec))
	require.NoError(t, err)

	const want = `
# HELP pathviz_expanded_nodes_total Total number of nodes taken off the frontier.
# TYPE pathviz_expanded_nodes_total counter
pathviz_expanded_nodes_total{mode="astar"} 3
pathviz_expanded_nodes_total{mode="bfs"} 0
# HELP pathviz_open_set_size Size of the open set after the latest round.
# TYPE pathviz_open_set_size gauge
pathviz_open_set_size{mode="astar"} 0
# HELP pathviz_runs_total Total number of finished search runs.
# TYPE pathviz_runs_total counter
pathviz_runs_total{mode="astar",status="found"} 1
pathviz_runs_total{mode="bfs",status="no_endpoints"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want),
		"pathviz_runs_total", "pathviz_expanded_nodes_total", "pathviz_open_set_size"))

	// Missing endpoints skip the step and cost histograms.
	n, err := testutil.GatherAndCount(reg, "pathviz_steps", "pathviz_path_cost")
	require.NoError(t, err)
	require.Equal(t, 2, n) // one astar series each
}

func TestRecorder_OpenSetDuringRun(t *testing.T) {
	reg, rec := newRecorder(t)

	g, err := grid.New(3, 3)
	require.NoError(t, err)
	start, _ := g.At(1, 1)
	goal, _ := g.At(2, 2)

	run, err := search.Run(g, start, goal, search.Dijkstra, search.WithObserver(rec))
	require.NoError(t, err)
	_, ok := run.Next()
	require.True(t, ok)

	const want = `
# HELP pathviz_open_set_size Size of the open set after the latest round.
# TYPE pathviz_open_set_size gauge
pathviz_open_set_size{mode="dijkstra"} 4
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "pathviz_open_set_size"))

	run.Close()
	const closed = `
# HELP pathviz_runs_total Total number of finished search runs.
# TYPE pathviz_runs_total counter
pathviz_runs_total{mode="dijkstra",status="cancelled"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(closed), "pathviz_runs_total"))
}

func TestNewRecorder_DuplicateRegistration(t *testing.T) {
	reg, _ := newRecorder(t)
	_, err := metrics.NewRecorder(reg)
	require.Error(t, err)

	var are prometheus.AlreadyRegisteredError
	require.ErrorAs(t, err, &are)
}
