// Package logging builds slog loggers for hosts embedding the engine. The
// engine itself stays silent unless a logger is handed to it.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
)

type Options struct {
	Level     slog.Level
	Output    io.Writer
	JSON      bool
	AddSource bool
}

type Option func(*Options)

// WithLevel sets the minimum level emitted by the logger.
func WithLevel(level slog.Level) Option {
	return func(o *Options) {
		o.Level = level
	}
}

// WithOutput redirects log output, default is os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// WithJSON switches from the text handler to the JSON handler.
func WithJSON(enable bool) Option {
	return func(o *Options) {
		o.JSON = enable
	}
}

// WithSource annotates records with the file and line that produced them.
func WithSource(enable bool) Option {
	return func(o *Options) {
		o.AddSource = enable
	}
}

// New returns a logger configured through options. Defaults match what a
// command-line host wants: text records at info level on stderr.
func New(opts ...Option) *slog.Logger {
	o := Options{
		Level:  slog.LevelInfo,
		Output: os.Stderr,
	}
	for _, opt := range opts {
		opt(&o)
	}

	ho := &slog.HandlerOptions{
		Level:     o.Level,
		AddSource: o.AddSource,
	}
	var handler slog.Handler
	if o.JSON {
		handler = slog.NewJSONHandler(o.Output, ho)
	} else {
		handler = slog.NewTextHandler(o.Output, ho)
	}
	return slog.New(handler)
}

// Nop returns a logger that discards every record.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(math.MaxInt),
	}))
}

// ParseLevel converts a level name such as "debug" or "WARN" into a
// slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", name)
	}
}
