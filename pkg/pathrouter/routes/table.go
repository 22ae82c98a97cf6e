// Package routes builds the immutable path-to-view table used by the router.
//
// Matching is exact: a path either has an entry or it does not. There is no
// prefix, pattern or parameter matching.
package routes

import (
	"sort"
	"strings"

	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/internal"
)

// ViewRef is an opaque handle to a renderable unit.
// The table stores it and hands it back; it never inspects it.
type ViewRef = any

// Entry associates a path with a view.
type Entry struct {
	Path  string  // Absolute path, must start with "/"
	View  ViewRef // Caller-owned view handle
	Title string  // Optional message ID used for link labels
}

// Table maps paths to views. It is immutable once built.
type Table struct {
	views  map[string]ViewRef
	titles map[string]string
}

// Build constructs a Table from entries.
// If a path appears more than once the last entry wins.
func Build(entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, &ConfigError{Reason: "no routes configured"}
	}

	var problems []EntryProblem
	for i, e := range entries {
		if reason := validatePath(e.Path); reason != "" {
			problems = append(problems, EntryProblem{Index: i, Path: e.Path, Reason: reason})
		}
	}
	if len(problems) > 0 {
		return nil, &ConfigError{Reason: "invalid route entries", Entries: problems}
	}

	t := &Table{
		views:  make(map[string]ViewRef, len(entries)),
		titles: make(map[string]string),
	}
	for _, e := range entries {
		if _, exists := t.views[e.Path]; exists {
			internal.GetInternalLogger().Warn("Duplicate route path, last entry wins", "path", e.Path)
		}
		t.views[e.Path] = e.View
		if e.Title != "" {
			t.titles[e.Path] = e.Title
		} else {
			delete(t.titles, e.Path)
		}
	}

	internal.GetInternalLogger().Debug("Route table built", "routes", len(t.views))
	return t, nil
}

func validatePath(path string) string {
	switch {
	case path == "":
		return "path is empty"
	case !strings.HasPrefix(path, "/"):
		return "path must start with /"
	}
	return ""
}

// Resolve returns the view registered for path.
// The boolean is false when nothing matches; that is a normal outcome, not an error.
func (t *Table) Resolve(path string) (ViewRef, bool) {
	if t == nil {
		return nil, false
	}
	v, ok := t.views[path]
	return v, ok
}

// Resolve is shorthand for table.Resolve(path).
func Resolve(table *Table, path string) (ViewRef, bool) {
	return table.Resolve(path)
}

// Has reports whether path has an entry.
func (t *Table) Has(path string) bool {
	_, ok := t.Resolve(path)
	return ok
}

// Title returns the label message ID configured for path, if any.
func (t *Table) Title(path string) (string, bool) {
	if t == nil {
		return "", false
	}
	title, ok := t.titles[path]
	return title, ok
}

// Len returns the number of distinct paths.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.views)
}

// Paths returns all registered paths in lexical order.
func (t *Table) Paths() []string {
	if t == nil {
		return nil
	}
	paths := make([]string, 0, len(t.views))
	for p := range t.views {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
