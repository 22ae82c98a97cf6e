// Package pathrouter is a small client-side router for UI hosts.
//
// A Router maps paths to views through an immutable route table and keeps
// the current path in a navigation controller. A Plugin installs the router
// into a host exactly once and registers two components: a link that
// navigates without reloading, and an outlet that renders the current view.
package pathrouter

import (
	"log/slog"
	"os"

	"golang.org/x/text/language"

	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/constants"
	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/internal"
	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/labels"
	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/navigation"
	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/routes"
)

// Options configures a Router.
type Options struct {
	Routes          []routes.Entry     // Routes given in code; applied before RoutesFile
	RoutesFile      string             // Optional TOML or YAML route file
	Views           routes.Views       // Binds view names in RoutesFile to view handles
	History         navigation.History // Browser history; defaults to an in-memory history at "/"
	Localizer       *labels.Localizer  // Link label source; created from MessageFiles when nil
	MessageFiles    []string           // TOML message files loaded into the localizer
	DefaultLanguage language.Tag       // Fallback label language (default English)
	Language        string             // Language links are labeled in unless a link overrides it
	LogPath         string             // Full path for log file including filename (creates parent directories)
	LogLevel        string             // Application log level: debug, info, warn, error
}

func configureLogging(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if constants.IsDebug() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	level := options.LogLevel
	if env := os.Getenv(constants.LogLevelEnvVar); env != "" {
		level = env
	}
	if level != "" {
		internal.SetRawLogLevel(level)
	}
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before the first log line is written to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetInternalLogLevel sets the minimum level for the router's own log lines.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// CloseLogger closes the log file, if one was opened.
// Must be called before program exit when LogPath is set.
func CloseLogger() {
	internal.CloseLogger()
}
