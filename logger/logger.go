// Package logger configures structured logging for the dyneq-gen command.
// Library packages never log; only the generator and its CLI do.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// configMutex protects concurrent calls to Configure. The function
// modifies global state through slog.SetDefault, so concurrent calls are
// serialized.
var configMutex sync.Mutex //nolint:gochecknoglobals

// Options is used to configure logging.
type Options struct {
	// JSON selects JSON output instead of text.
	JSON bool

	// MinLevel is the minimum level that will be logged.
	MinLevel slog.Level

	// Output defaults to os.Stderr, keeping stdout clean for generated
	// code when the command prints to it.
	Output io.Writer
}

// Configure installs a handler built from opts as the slog default and
// returns the resulting logger.
func Configure(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	var handler slog.Handler

	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	} else {
		handler = slog.NewTextHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	}

	log := slog.New(handler)
	slog.SetDefault(log)

	return log
}
