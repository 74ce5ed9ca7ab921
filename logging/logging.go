// Package logging configures structured logging for gitlabctl.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
)

// LevelSilent is above every real level so nothing gets logged
const LevelSilent = slog.Level(1000)

// ParseLogLevel converts a string log level to slog.Level
func ParseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "silent", "none":
		return LevelSilent
	default:
		return slog.LevelInfo
	}
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warning", "error", "silent"}
}

// NewLogger builds a text logger writing to w at the given level
func NewLogger(w io.Writer, logLevel string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLogLevel(logLevel),
	})
	return slog.New(handler)
}

// InitLogging installs a stderr logger with the specified level as the slog default
func InitLogging(logLevel string) {
	slog.SetDefault(NewLogger(os.Stderr, logLevel))
}

// LogLevel is the --log-level flag. The CLI stays silent unless asked otherwise.
var LogLevel = &logLevelFlag{value: "silent", set: false}

type logLevelFlag struct {
	value string
	set   bool
}

func (l *logLevelFlag) Set(value string) error {
	if !slices.Contains(ValidLogLevels(), value) {
		return fmt.Errorf("invalid value '%s'. Allowed values: %s",
			value, strings.Join(ValidLogLevels(), ", "))
	}
	l.value = value
	l.set = true
	return nil
}

func (l *logLevelFlag) String() string {
	return l.value
}

func (l *logLevelFlag) Type() string {
	return fmt.Sprintf("one of [%s]", strings.Join(ValidLogLevels(), "|"))
}

// IsSet returns true if the flag was explicitly set via command line
func (l *logLevelFlag) IsSet() bool {
	return l.set
}

// Reset restores the flag default; commands are rebuilt per test run
func (l *logLevelFlag) Reset() {
	l.value = "silent"
	l.set = false
}
