package labels

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
)

const englishMessages = `
[home]
other = "Home"

[about]
other = "About us"
`

const germanMessages = `
[home]
other = "Startseite"
`

func newTestLocalizer(t *testing.T) *Localizer {
	t.Helper()
	l := NewLocalizer(language.English)
	if err := l.AddMessages("active.en.toml", []byte(englishMessages)); err != nil {
		t.Fatal(err)
	}
	if err := l.AddMessages("active.de.toml", []byte(germanMessages)); err != nil {
		t.Fatal(err)
	}
	return l
}

func TestLabel(t *testing.T) {
	l := newTestLocalizer(t)

	tests := []struct {
		name      string
		lang      string
		messageID string
		fallback  string
		want      string
	}{
		{"english", "en", "home", "/", "Home"},
		{"german", "de", "home", "/", "Startseite"},
		{"german falls back to default language", "de", "about", "/about", "About us"},
		{"accept-language list", "fr, de;q=0.9", "home", "/", "Startseite"},
		{"unknown language", "ja", "home", "/", "Home"},
		{"unknown message", "en", "contact", "/contact", "/contact"},
		{"no message id", "en", "", "/x", "/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Label(tt.lang, tt.messageID, tt.fallback); got != tt.want {
				t.Errorf("Label(%q, %q) = %q, want %q", tt.lang, tt.messageID, got, tt.want)
			}
		})
	}
}

func TestLabel_CachedUntilMessagesChange(t *testing.T) {
	l := NewLocalizer(language.English)

	if got := l.Label("en", "home", "/"); got != "/" {
		t.Fatalf("Label before load = %q, want fallback", got)
	}
	if l.cache.Len() != 0 {
		t.Errorf("fallback was cached; cache Len() = %d, want 0", l.cache.Len())
	}

	if err := l.AddMessages("en.toml", []byte(englishMessages)); err != nil {
		t.Fatal(err)
	}
	if got := l.Label("en", "home", "/"); got != "Home" {
		t.Errorf("Label after load = %q, want Home", got)
	}
	if l.cache.Len() != 1 {
		t.Errorf("cache Len() = %d, want 1", l.cache.Len())
	}

	if err := l.AddMessages("en2.toml", []byte("[home]\nother = \"Start\"\n")); err != nil {
		t.Fatal(err)
	}
	if got := l.Label("en", "home", "/"); got != "Start" {
		t.Errorf("Label after reload = %q, want Start", got)
	}
}

func TestLabel_SharedMissingMessageKeepsEachFallback(t *testing.T) {
	l := NewLocalizer(language.English)

	if got := l.Label("en", "nav.x", "/a"); got != "/a" {
		t.Errorf("Label for /a = %q, want /a", got)
	}
	if got := l.Label("en", "nav.x", "/b"); got != "/b" {
		t.Errorf("Label for /b = %q, want /b", got)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "active.de.toml")
	if err := os.WriteFile(path, []byte(germanMessages), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLocalizer(language.English)
	if err := l.LoadFile(path); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if got := l.Label("de", "home", "/"); got != "Startseite" {
		t.Errorf("Label = %q, want Startseite", got)
	}

	found := false
	for _, tag := range l.Languages() {
		if tag == language.German {
			found = true
		}
	}
	if !found {
		t.Errorf("Languages() = %v, want German included", l.Languages())
	}
}

func TestLoadFile_Errors(t *testing.T) {
	l := NewLocalizer(language.English)
	if err := l.LoadFile(filepath.Join(t.TempDir(), "missing.en.toml")); err == nil {
		t.Error("expected error for missing file")
	}
	if err := l.AddMessages("bad.en.toml", []byte("[home\nother =")); err == nil {
		t.Error("expected error for malformed toml")
	}
}

func TestLabelCache_EvictsOldest(t *testing.T) {
	c := newLabelCache(2)
	c.Set("a", "A")
	c.Set("b", "B")
	c.Get("a")
	c.Set("c", "C")

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if v, ok := c.Get("a"); !ok || v != "A" {
		t.Error("a should survive as most recently used")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}
