package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/pathviz/search"
)

// Recorder turns search callbacks into Prometheus observations.
// It is safe for concurrent use by several runs.
type Recorder struct {
	runs     *prometheus.CounterVec
	steps    *prometheus.HistogramVec
	expanded *prometheus.CounterVec
	cost     *prometheus.HistogramVec
	openSize *prometheus.GaugeVec
}

var _ search.Observer = (*Recorder)(nil)

// NewRecorder creates the run metrics and registers them on reg.
// Registering twice on the same registry fails with the registry's
// AlreadyRegisteredError, wrapped.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pathviz_runs_total",
				Help: "Total number of finished search runs.",
			},
			[]string{"mode", "status"}, // status: found, not_found, no_endpoints, cancelled
		),
		steps: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pathviz_steps",
				Help:    "Number of rounds performed by a finished run.",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
			[]string{"mode"},
		),
		expanded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pathviz_expanded_nodes_total",
				Help: "Total number of nodes taken off the frontier.",
			},
			[]string{"mode"},
		),
		cost: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pathviz_path_cost",
				Help:    "Traversal cost of found paths.",
				Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100, 200, 500, 1000},
			},
			[]string{"mode"},
		),
		openSize: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pathviz_open_set_size",
				Help: "Size of the open set after the latest round.",
			},
			[]string{"mode"},
		),
	}

	for _, c := range []prometheus.Collector{r.runs, r.steps, r.expanded, r.cost, r.openSize} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}
	return r, nil
}

// OnStep records the frontier size.
func (r *Recorder) OnStep(s search.Snapshot) {
	r.openSize.WithLabelValues(s.Mode.String()).Set(float64(len(s.Open)))
}

// OnFinish records the terminal outcome of a run.
func (r *Recorder) OnFinish(res search.Result) {
	mode := res.Mode.String()
	r.runs.WithLabelValues(mode, res.Status.String()).Inc()
	r.expanded.WithLabelValues(mode).Add(float64(res.Expanded))
	if res.Status == search.StatusNoEndpoints {
		return
	}
	r.steps.WithLabelValues(mode).Observe(float64(res.Steps))
	r.openSize.WithLabelValues(mode).Set(0)
	if res.Found() {
		r.cost.WithLabelValues(mode).Observe(res.Cost)
	}
}
