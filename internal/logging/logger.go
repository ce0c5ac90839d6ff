package logging

import (
	"io"
	"log/slog"
	"os"
)

// Init installs the default logger. Diagnostics go to stderr so the report on stdout stays clean.
func Init(verbose bool) {
	InitWithWriter(os.Stderr, verbose)
}

func InitWithWriter(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
