// Package config loads pathviz driver settings from .env files and PATHVIZ_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/logging"
	"github.com/katalvlaran/pathviz/search"
)

// Prefix is the environment variable prefix, e.g. PATHVIZ_WIDTH.
const Prefix = "PATHVIZ"

// Config validation errors.
var (
	ErrInvalidSize      = errors.New("config: width and height must be positive")
	ErrInvalidMode      = errors.New("config: mode must be astar, dijkstra or bfs")
	ErrInvalidWeight    = errors.New("config: heuristic_weight must be a finite number >= 0")
	ErrInvalidDelay     = errors.New("config: step_delay must not be negative")
	ErrInvalidPosition  = errors.New("config: position must be \"x,y\" inside the grid")
	ErrInvalidLogLevel  = errors.New("config: invalid log_level")
	ErrInvalidLogFormat = errors.New("config: log_format must be 'json' or 'console'")
)

// Config holds the driver settings. Start and Goal are "x,y" strings; an
// empty string leaves that endpoint unset.
type Config struct {
	Width           int           `envconfig:"WIDTH" default:"10"`
	Height          int           `envconfig:"HEIGHT" default:"10"`
	Mode            string        `envconfig:"MODE" default:"astar"`
	HeuristicWeight float64       `envconfig:"HEURISTIC_WEIGHT" default:"1"`
	StepDelay       time.Duration `envconfig:"STEP_DELAY" default:"200ms"`
	Start           string        `envconfig:"START" default:"0,0"`
	Goal            string        `envconfig:"GOAL" default:"9,9"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"console"`
	MetricsAddr     string        `envconfig:"METRICS_ADDR" default:""` // empty disables /metrics
}

// Load reads the given .env files (missing ones are skipped; variables
// already in the environment win), then processes PATHVIZ_* variables over
// the defaults, then validates. The returned Config is usable even when
// validation fails, so callers may apply overrides and call Validate again.
func Load(files ...string) (Config, error) {
	for _, f := range files {
		if f == "" {
			continue
		}
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks every field and returns the first violation.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if _, err := search.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode)
	}
	if c.HeuristicWeight < 0 || math.IsNaN(c.HeuristicWeight) || math.IsInf(c.HeuristicWeight, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, c.HeuristicWeight)
	}
	if c.StepDelay < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDelay, c.StepDelay)
	}
	for _, p := range []string{c.Start, c.Goal} {
		if p == "" {
			continue
		}
		pos, err := ParsePosition(p)
		if err != nil {
			return err
		}
		if pos.X >= c.Width || pos.Y >= c.Height {
			return fmt.Errorf("%w: %s outside %dx%d", ErrInvalidPosition, pos, c.Width, c.Height)
		}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	if f := strings.ToLower(c.LogFormat); f != logging.FormatJSON && f != logging.FormatConsole {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}
	return nil
}

// SearchMode returns the parsed Mode. Call after Validate.
func (c Config) SearchMode() search.Mode {
	m, _ := search.ParseMode(c.Mode)
	return m
}

// ParsePosition parses "x,y" with non-negative integers; spaces around
// either number are allowed.
func ParsePosition(s string) (grid.Position, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil || x < 0 || y < 0 {
		return grid.Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	return grid.Position{X: x, Y: y}, nil
}
