package main

//
// Logging functionality
//

import (
	"io"

	"github.com/apex/log"
	"github.com/vkbind/vk/internal/log/handlers/cli"
)

// newLogger creates the logger writing to w.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := &log.Logger{Level: log.InfoLevel, Handler: cli.New(w)}
	if verbose {
		logger.Level = log.DebugLevel
	}
	return logger
}
