// Package logging configures the process-wide hclog logger and routes the
// standard library logger through it so "[WARN] ..." style messages keep
// their level.
package logging

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Options controls logger construction
type Options struct {
	Name   string
	Level  string // trace|debug|info|warn|error|off
	JSON   bool
	Output io.Writer
}

// New builds an hclog.Logger from options. Unknown levels fall back to info.
func New(opts Options) hclog.Logger {
	level := hclog.LevelFromString(strings.ToLower(opts.Level))
	if level == hclog.NoLevel {
		level = hclog.Info
	}

	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	name := opts.Name
	if name == "" {
		name = "annotator"
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      level,
		JSONFormat: opts.JSON,
		Output:     output,
	})
}

// Setup builds the logger, installs it as the hclog default and redirects the
// standard log package into it with level inference.
func Setup(opts Options) hclog.Logger {
	logger := New(opts)
	hclog.SetDefault(logger)

	log.SetFlags(0)
	log.SetPrefix("")
	log.SetOutput(logger.StandardWriter(&hclog.StandardLoggerOptions{
		InferLevels: true,
	}))

	return logger
}

// Discard returns a logger that drops everything (for tests)
func Discard() hclog.Logger {
	return hclog.NewNullLogger()
}
