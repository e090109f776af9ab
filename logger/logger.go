// Package logger builds leveled, per-module loggers on top of go-logging.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

const defaultLogFormat = "%{color}%{time:15:04:05.000} %{level:.4s} [%{module}]%{color:reset} %{message}"

// LogLevelFlag is shared by every command of the bcp tool.
var LogLevelFlag = cli.StringFlag{
	Name:    "log",
	Aliases: []string{"l"},
	Usage:   "level of the logging of the app action (\"critical\", \"error\", \"warning\", \"notice\", \"info\", \"debug\")",
	Value:   "info",
}

// NewLogger returns a logger for module writing to stdout at the given level.
// An unknown level falls back to INFO.
func NewLogger(level string, module string) *logging.Logger {
	return newLogger(os.Stdout, level, module, logging.MustStringFormatter(defaultLogFormat))
}

// NewNopLogger returns a logger for module that discards everything.
func NewNopLogger(module string) *logging.Logger {
	log := logging.MustGetLogger(module)
	leveled := logging.AddModuleLevel(logging.NewLogBackend(io.Discard, "", 0))
	leveled.SetLevel(logging.CRITICAL, module)
	log.SetBackend(leveled)
	return log
}

func newLogger(w io.Writer, level string, module string, format logging.Formatter) *logging.Logger {
	log := logging.MustGetLogger(module)

	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)

	logLevel, err := logging.LogLevel(strings.ToUpper(level))
	if err != nil {
		logLevel = logging.INFO
	}
	leveled.SetLevel(logLevel, module)
	log.SetBackend(leveled)
	// IsEnabledFor consults the package-level backend, keep it in step.
	logging.SetLevel(logLevel, module)

	return log
}

// ParseTime splits elapsed into whole hours, minutes and seconds.
func ParseTime(elapsed time.Duration) (uint32, uint32, uint32) {
	total := uint32(elapsed.Round(time.Second).Seconds())
	return total / 3600, total % 3600 / 60, total % 60
}
