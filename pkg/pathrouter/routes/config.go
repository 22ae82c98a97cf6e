package routes

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a route file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FileRoute is one route as written in a route file.
// View names a view; it is turned into a ViewRef through a Views lookup.
type FileRoute struct {
	Path  string `toml:"path" yaml:"path"`
	View  string `toml:"view" yaml:"view"`
	Title string `toml:"title" yaml:"title"`
}

// File is the top-level layout of a route file:
//
//	[[routes]]
//	path = "/"
//	view = "home"
//	title = "nav.home"
type File struct {
	Routes []FileRoute `toml:"routes" yaml:"routes"`
}

// Views maps the view names used in route files to caller-owned view handles.
// A nil Views keeps the name itself as the ViewRef.
type Views map[string]ViewRef

// FormatFor picks a format from a file extension.
func FormatFor(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, true
	case ".yaml", ".yml":
		return FormatYAML, true
	}
	return "", false
}

// LoadFile reads a TOML or YAML route file and returns its entries in file order.
// Every failure is reported as a *ConfigError.
func LoadFile(path string, views Views) ([]Entry, error) {
	format, ok := FormatFor(path)
	if !ok {
		return nil, &ConfigError{Source: path, Reason: fmt.Sprintf("unsupported route file extension %q", filepath.Ext(path))}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Source: path, Reason: "read failed", Err: err}
	}

	entries, err := Decode(data, format, views)
	if err != nil {
		if cfgErr, ok := err.(*ConfigError); ok {
			cfgErr.Source = path
		}
		return nil, err
	}
	return entries, nil
}

// Decode parses route file content in the given format.
func Decode(data []byte, format Format, views Views) ([]Entry, error) {
	var f File
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, &ConfigError{Reason: "toml decode failed", Err: err}
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, &ConfigError{Reason: "yaml decode failed", Err: err}
		}
	default:
		return nil, &ConfigError{Reason: fmt.Sprintf("unknown route file format %q", format)}
	}

	return f.Entries(views)
}

// Entries converts file routes into table entries, binding view names through views.
func (f File) Entries(views Views) ([]Entry, error) {
	entries := make([]Entry, 0, len(f.Routes))
	var problems []EntryProblem

	for i, r := range f.Routes {
		var view ViewRef = r.View
		if views != nil {
			v, ok := views[r.View]
			if !ok {
				problems = append(problems, EntryProblem{Index: i, Path: r.Path, Reason: fmt.Sprintf("unknown view %q", r.View)})
				continue
			}
			view = v
		}
		entries = append(entries, Entry{Path: r.Path, View: view, Title: r.Title})
	}

	if len(problems) > 0 {
		return nil, &ConfigError{Reason: "unbound views", Entries: problems}
	}
	return entries, nil
}
