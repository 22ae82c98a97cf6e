// Package constants defines shared names and default values
// used throughout pathrouter.
package constants

import (
	"os"
	"time"
)

// RootPath is the path the navigation state starts at when no better location is known.
const RootPath = "/"

// Component names registered with the host UI.
const (
	LinkComponentName   = "router-link"
	OutletComponentName = "router-view"
)

// DebugEnvVar enables debug logging for the router internals when set to any value.
const DebugEnvVar = "PATHROUTER_DEBUG"

// LogLevelEnvVar sets the application log level (debug, info, warn, error).
const LogLevelEnvVar = "PATHROUTER_LOG_LEVEL"

// IsDebug returns true if router debug logging was requested through the environment.
func IsDebug() bool {
	return os.Getenv(DebugEnvVar) != ""
}

// Default hold-to-repeat timing for hardware navigation keys.
const (
	DefaultRepeatDelay    = 300 * time.Millisecond // Hold time before the first repeat
	DefaultRepeatInterval = 80 * time.Millisecond  // Time between subsequent repeats
)

// DefaultLabelCacheSize is the number of localized labels memoized per localizer.
const DefaultLabelCacheSize = 64
