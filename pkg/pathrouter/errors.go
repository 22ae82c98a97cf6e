package pathrouter

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/routes"
)

// Sentinel errors for common conditions.
var (
	// ErrNotInitialized indicates the router was used before Init (or Install) ran.
	ErrNotInitialized = errors.New("router not initialized")

	// ErrNoHost indicates Install was called without a host to install into.
	ErrNoHost = errors.New("no host to install into")

	// ErrNoRouter indicates Install was called without a router to install.
	ErrNoRouter = errors.New("no router to install")
)

// InfrastructureError represents a failure of something the router depends
// on but does not own: a message file that will not parse, an input device
// that will not open. Route configuration problems are reported as
// *routes.ConfigError instead.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "load_labels", "open_input")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pathrouter: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("pathrouter: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsConfigError checks if an error is a route configuration error.
func IsConfigError(err error) bool {
	return routes.IsConfigError(err)
}
