// Package constants defines shared defaults and environment variable names
// used throughout stackanim.
package constants

import (
	"os"
	"time"
)

// DefaultTiming is the duration of the outgoing effect when none is given.
// The incoming effect always runs for half of it.
const DefaultTiming = 800 * time.Millisecond

// Development is the environment variable value for development mode.
const Development = "DEV"

// EnvironmentEnvVar selects the runtime environment (set to DEV for a windowed desktop run).
const EnvironmentEnvVar = "ENVIRONMENT"

// DebugEnvVar enables debug logging for the internal logger when set to any value.
const DebugEnvVar = "STACKANIM_DEBUG"

// WindowWidthEnvVar overrides the window width in development mode.
const WindowWidthEnvVar = "WINDOW_WIDTH"

// WindowHeightEnvVar overrides the window height in development mode.
const WindowHeightEnvVar = "WINDOW_HEIGHT"

// DevWindowWidth and DevWindowHeight are used in development mode when no override is set.
const (
	DevWindowWidth  = 1024
	DevWindowHeight = 768
)

// FrameInterval is the minimum time between presented frames when VSync is unavailable.
const FrameInterval = 16 * time.Millisecond

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}
