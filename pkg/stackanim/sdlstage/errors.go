package sdlstage

import (
	"errors"
	"fmt"
)

// InfrastructureError represents an SDL-level failure (window creation, renderer,
// asset loading). These errors are typically fatal for the stage.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "create_window", "load_image")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sdlstage: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("sdlstage: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

func newInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
