package stackanim

import (
	"log/slog"

	"github.com/BrandonKowalski/stackanim/pkg/stackanim/internal"
)

// SetLogPath sets the full path for the log file, including filename.
// Call before the first Stack is created.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the shared logger used by stacks that are not given one.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum level of the shared logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// CloseLogger closes the log file opened by SetLogPath.
func CloseLogger() {
	internal.CloseLogger()
}
