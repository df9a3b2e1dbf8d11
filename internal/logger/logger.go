// Package logger configures the process-wide structured logger.
package logger

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the shared logger instance. It writes to stderr so TUI output on
// stdout stays clean.
var Logger = log.New(os.Stderr)

func init() {
	Logger.SetTimeFormat("")
	Logger.SetLevel(levelFromEnv())
}

func levelFromEnv() log.Level {
	switch strings.ToLower(os.Getenv("PROMPTFORGE_LOG_LEVEL")) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

// SetVerbose lowers the level to debug, used by the --verbose flag.
func SetVerbose() {
	Logger.SetLevel(log.DebugLevel)
}

// Debug logs at debug level.
func Debug(msg interface{}, keyvals ...interface{}) { Logger.Debug(msg, keyvals...) }

// Warn logs at warn level.
func Warn(msg interface{}, keyvals ...interface{}) { Logger.Warn(msg, keyvals...) }

// Error logs at error level.
func Error(msg interface{}, keyvals ...interface{}) { Logger.Error(msg, keyvals...) }
