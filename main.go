package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gogpu/gg"

	"Drawspace/internal/ui"
)

// newLogger writes timestamped records to w at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "drawspace",
	})
}

func main() {
	logger := newLogger(os.Stderr, log.InfoLevel)
	log.SetDefault(logger)
	// gg only logs warnings worth seeing, such as resource release errors.
	gg.SetLogger(slog.New(logger.With("lib", "gg")))

	if err := ui.Run(logger); err != nil {
		logger.Fatal("startup failed", "err", err)
	}
	logger.Info("bye")
}
