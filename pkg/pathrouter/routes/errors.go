package routes

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is matched by every ConfigError through errors.Is.
var ErrInvalidConfig = errors.New("invalid route configuration")

// EntryProblem describes one rejected route entry.
type EntryProblem struct {
	Index  int    // Position in the input list
	Path   string // Path as supplied
	Reason string // Why it was rejected
}

// ConfigError reports a malformed or empty route configuration.
// It is fatal to startup: retrying with the same input gives the same error.
type ConfigError struct {
	Reason  string         // Summary of the failure
	Source  string         // File the configuration came from, if any
	Entries []EntryProblem // Offending entries, if the failure is per-entry
	Err     error          // Underlying error (decode failures and such)
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("routes: ")
	if e.Source != "" {
		fmt.Fprintf(&b, "%s: ", e.Source)
	}
	b.WriteString(e.Reason)
	for _, p := range e.Entries {
		fmt.Fprintf(&b, "; entry %d (%q): %s", p.Index, p.Path, p.Reason)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// IsConfigError checks if an error is a route configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
