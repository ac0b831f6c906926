package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathviz/config"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/logging"
	"github.com/katalvlaran/pathviz/metrics"
	"github.com/katalvlaran/pathviz/search"
)

const longDescription = `Run A*, Dijkstra or breadth-first search on a weighted grid.

Every round is logged as it happens; --delay paces the rounds like an
animation (0 runs instantly). When the run ends the grid is printed with the
start (S), the goal (G) and the path (*). Other cells show their cost:
'.' for 1, '#' for the maximum of 10, and the digit otherwise.

Settings come from PATHVIZ_* environment variables, optionally loaded from
an .env file, and are overridden by flags.`

// Options holds raw flag values. Only flags the user set override the
// loaded configuration.
type Options struct {
	EnvFile string

	Width       int
	Height      int
	Mode        string
	Weight      float64
	Start       string
	Goal        string
	Costs       []string
	Delay       time.Duration
	LogLevel    string
	LogFormat   string
	MetricsAddr string

	cfg   config.Config
	costs []cellCost
	out   io.Writer
	err   io.Writer
}

type cellCost struct {
	pos   grid.Position
	value float64
}

// NewCommand returns the pathviz root command. The map and summary go to
// out, logs to errOut.
func NewCommand(out, errOut io.Writer) *cobra.Command {
	o := &Options{out: out, err: errOut}

	cmd := &cobra.Command{
		Use:           "pathviz",
		Short:         "Step through a grid pathfinding search",
		Long:          longDescription,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd.Flags()); err != nil {
				fmt.Fprintln(errOut, "error:", err)
				return err
			}
			if err := o.Run(cmd.Context()); err != nil {
				fmt.Fprintln(errOut, "error:", err)
				return err
			}
			return nil
		},
	}
	o.AddFlags(cmd.Flags())

	return cmd
}

// AddFlags registers the command line flags on fs.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.EnvFile, "env-file", ".env", "dotenv file to load; a missing file is ignored")
	fs.IntVar(&o.Width, "width", 0, "grid width (PATHVIZ_WIDTH, default 10)")
	fs.IntVar(&o.Height, "height", 0, "grid height (PATHVIZ_HEIGHT, default 10)")
	fs.StringVarP(&o.Mode, "mode", "m", "", "astar, dijkstra or bfs (PATHVIZ_MODE, default astar)")
	fs.Float64Var(&o.Weight, "weight", 0, "A* heuristic weight (PATHVIZ_HEURISTIC_WEIGHT, default 1)")
	fs.StringVar(&o.Start, "start", "", "start cell x,y; empty for none (PATHVIZ_START, default 0,0)")
	fs.StringVar(&o.Goal, "goal", "", "goal cell x,y; empty for none (PATHVIZ_GOAL, default 9,9)")
	fs.StringArrayVar(&o.Costs, "cost", nil, "cell cost x,y=v, repeatable; v is clamped to [0,10]")
	fs.DurationVar(&o.Delay, "delay", 0, "pause between rounds (PATHVIZ_STEP_DELAY, default 200ms)")
	fs.StringVar(&o.LogLevel, "log-level", "", "trace, debug, info, warn or error (PATHVIZ_LOG_LEVEL)")
	fs.StringVar(&o.LogFormat, "log-format", "", "console or json (PATHVIZ_LOG_FORMAT)")
	fs.StringVar(&o.MetricsAddr, "metrics-addr", "", "serve Prometheus /metrics on this address (PATHVIZ_METRICS_ADDR)")
}

// Complete loads the configuration, applies the flags that were set and
// validates the result.
func (o *Options) Complete(fs *pflag.FlagSet) error {
	cfg, err := config.Load(o.EnvFile)
	if err != nil && !isValidationError(err) {
		return err
	}

	if fs.Changed("width") {
		cfg.Width = o.Width
	}
	if fs.Changed("height") {
		cfg.Height = o.Height
	}
	if fs.Changed("mode") {
		cfg.Mode = o.Mode
	}
	if fs.Changed("weight") {
		cfg.HeuristicWeight = o.Weight
	}
	if fs.Changed("start") {
		cfg.Start = o.Start
	}
	if fs.Changed("goal") {
		cfg.Goal = o.Goal
	}
	if fs.Changed("delay") {
		cfg.StepDelay = o.Delay
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = o.LogLevel
	}
	if fs.Changed("log-format") {
		cfg.LogFormat = o.LogFormat
	}
	if fs.Changed("metrics-addr") {
		cfg.MetricsAddr = o.MetricsAddr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	o.costs = o.costs[:0]
	for _, s := range o.Costs {
		c, err := parseCellCost(s)
		if err != nil {
			return err
		}
		o.costs = append(o.costs, c)
	}
	o.cfg = cfg
	return nil
}

// isValidationError reports whether err came from Config.Validate, which
// flags may still fix.
func isValidationError(err error) bool {
	for _, e := range []error{
		config.ErrInvalidSize, config.ErrInvalidMode, config.ErrInvalidWeight,
		config.ErrInvalidDelay, config.ErrInvalidPosition,
		config.ErrInvalidLogLevel, config.ErrInvalidLogFormat,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// parseCellCost parses "x,y=v".
func parseCellCost(s string) (cellCost, error) {
	ps, vs, ok := strings.Cut(s, "=")
	if !ok {
		return cellCost{}, fmt.Errorf("--cost %q: want x,y=v", s)
	}
	pos, err := config.ParsePosition(ps)
	if err != nil {
		return cellCost{}, fmt.Errorf("--cost %q: %w", s, err)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(vs), 64)
	if err != nil {
		return cellCost{}, fmt.Errorf("--cost %q: %w", s, err)
	}
	return cellCost{pos: pos, value: v}, nil
}

// Run builds the grid, serves metrics if asked and plays the search.
func (o *Options) Run(ctx context.Context) error {
	log, err := logging.New(o.err, o.cfg.LogLevel, o.cfg.LogFormat)
	if err != nil {
		return err
	}

	board, err := o.buildBoard()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, egCtx := errgroup.WithContext(ctx)

	if addr := o.cfg.MetricsAddr; addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

		eg.Go(func() error {
			log.Info().Str("address", addr).Msg("metrics server starting")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		eg.Go(func() error {
			<-egCtx.Done()
			shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
			defer done()
			return srv.Shutdown(shutdownCtx)
		})
	}

	eg.Go(func() error {
		defer cancel()
		res := o.play(egCtx, board, rec, log)
		if err := printMap(o.out, board.Grid(), res); err != nil {
			return err
		}
		return printSummary(o.out, res)
	})

	return eg.Wait()
}

func (o *Options) buildBoard() (*search.Board, error) {
	g, err := grid.New(o.cfg.Width, o.cfg.Height)
	if err != nil {
		return nil, err
	}
	board, err := search.NewBoard(g)
	if err != nil {
		return nil, err
	}
	for _, c := range o.costs {
		if err := board.SetCost(c.pos, c.value); err != nil {
			return nil, fmt.Errorf("cost %s: %w", c.pos, err)
		}
	}
	for _, ep := range []struct {
		raw string
		set func(grid.Position) error
	}{
		{o.cfg.Start, board.SetStart},
		{o.cfg.Goal, board.SetGoal},
	} {
		if ep.raw == "" {
			continue
		}
		p, err := config.ParsePosition(ep.raw)
		if err != nil {
			return nil, err
		}
		if err := ep.set(p); err != nil {
			return nil, err
		}
	}
	return board, nil
}

// play steps the search, sleeping StepDelay between rounds. Cancelling ctx
// closes the run, so the result is then StatusCancelled.
func (o *Options) play(ctx context.Context, board *search.Board, rec *metrics.Recorder, log zerolog.Logger) search.Result {
	run, err := board.Run(o.cfg.SearchMode(),
		search.WithHeuristicWeight(o.cfg.HeuristicWeight),
		search.WithObserver(rec),
		search.WithLogger(log),
	)
	if err != nil {
		// Options and mode were validated by Complete.
		log.Error().Err(err).Msg("search rejected")
		return search.Result{Mode: o.cfg.SearchMode(), Status: search.StatusNoEndpoints}
	}

	var tick <-chan time.Time
	if d := o.cfg.StepDelay; d > 0 {
		ticker := time.NewTicker(d)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		snap, ok := run.Next()
		if !ok {
			break
		}
		log.Info().
			Int("step", snap.Step).
			Stringer("current", snap.Current).
			Int("open", len(snap.Open)).
			Int("closed", len(snap.Closed)).
			Msg("step")

		if tick == nil {
			if ctx.Err() != nil {
				run.Close()
				break
			}
			continue
		}
		select {
		case <-ctx.Done():
			run.Close()
		case <-tick:
		}
	}

	res := run.Result()
	log.Info().
		Stringer("mode", res.Mode).
		Stringer("status", res.Status).
		Float64("cost", res.Cost).
		Int("hops", res.Hops).
		Int("steps", res.Steps).
		Int("expanded", res.Expanded).
		Msg("search finished")
	return res
}
