// Package logging builds the zerolog loggers used by the pathviz driver.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	// ErrBadLevel is returned for an unrecognised level name.
	ErrBadLevel = errors.New("logging: invalid level")
	// ErrBadFormat is returned for a format other than console or json.
	ErrBadFormat = errors.New("logging: invalid format")
)

// Output formats accepted by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// New returns a logger writing to w (os.Stderr when nil) at the given level.
// Level names are zerolog's: trace, debug, info, warn, error, fatal, panic,
// disabled; "warning" is accepted too. The json format adds a timestamp to
// every event; console renders human-readable lines.
func New(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if w == nil {
		w = os.Stderr
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
	case FormatConsole, "text", "":
		cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: !isTerminal(w)}
		return zerolog.New(cw).Level(lvl).With().Timestamp().Logger(), nil
	default:
		return zerolog.Nop(), fmt.Errorf("%w: %q", ErrBadFormat, format)
	}
}

// ParseLevel maps a level name to a zerolog.Level. Empty means info.
func ParseLevel(level string) (zerolog.Level, error) {
	switch s := strings.ToLower(strings.TrimSpace(level)); s {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	default:
		lvl, err := zerolog.ParseLevel(s)
		if err != nil || lvl == zerolog.NoLevel {
			return zerolog.InfoLevel, fmt.Errorf("%w: %q", ErrBadLevel, level)
		}
		return lvl, nil
	}
}

// isTerminal reports whether w is a character device such as a TTY.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
