package stackanim

import (
	"errors"
	"fmt"
)

// Sentinel errors for composition mistakes. Navigation itself never returns errors:
// invalid requests are logged and ignored.
var (
	// ErrNoStack indicates UseStackAnimation was called outside of any Stack render.
	ErrNoStack = errors.New("stackanim: UseStackAnimation must be called within a Stack")

	// ErrStackType indicates the nearest Stack uses a different props type than requested.
	ErrStackType = errors.New("stackanim: nearest Stack has a different props type")
)

// ConfigError reports a configuration file or value that could not be used.
type ConfigError struct {
	Path  string // File the configuration came from, empty for in-memory data
	Field string // Offending key, empty when the whole document failed
	Err   error  // Underlying error
}

func (e *ConfigError) Error() string {
	source := e.Path
	if source == "" {
		source = "config"
	}
	if e.Field != "" {
		return fmt.Sprintf("stackanim: %s: %s: %v", source, e.Field, e.Err)
	}
	return fmt.Sprintf("stackanim: %s: %v", source, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError checks if an error is a configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
