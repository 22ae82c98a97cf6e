// Package labels turns route titles (message IDs) into localized link text.
//
// Message files are TOML, one per language, in the go-i18n layout:
//
//	# active.en.toml
//	[nav.home]
//	other = "Home"
package labels

import (
	"errors"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/constants"
	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/internal"
)

// Localizer resolves message IDs to text in a requested language.
// It is safe for concurrent use.
type Localizer struct {
	bundle      *i18n.Bundle
	defaultLang language.Tag

	mu         sync.Mutex
	localizers map[string]*i18n.Localizer
	cache      *labelCache
}

// NewLocalizer creates a Localizer with defaultLang as the fallback language.
func NewLocalizer(defaultLang language.Tag) *Localizer {
	bundle := i18n.NewBundle(defaultLang)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	return &Localizer{
		bundle:      bundle,
		defaultLang: defaultLang,
		localizers:  make(map[string]*i18n.Localizer),
		cache:       newLabelCache(constants.DefaultLabelCacheSize),
	}
}

// LoadFile adds the messages of a TOML message file. The language is taken
// from the file name, e.g. "active.de.toml".
func (l *Localizer) LoadFile(path string) error {
	if _, err := l.bundle.LoadMessageFile(path); err != nil {
		return fmt.Errorf("load messages %s: %w", path, err)
	}
	l.reset()
	return nil
}

// AddMessages parses TOML message content. name must carry the language
// and format like a file name would ("en.toml").
func (l *Localizer) AddMessages(name string, data []byte) error {
	if _, err := l.bundle.ParseMessageFileBytes(data, name); err != nil {
		return fmt.Errorf("parse messages %s: %w", name, err)
	}
	l.reset()
	return nil
}

// DefaultLanguage returns the fallback language.
func (l *Localizer) DefaultLanguage() language.Tag {
	return l.defaultLang
}

// Label returns the text for messageID in lang, where lang is a BCP 47 tag
// or an Accept-Language style list. When the message is unknown, fallback is
// returned. Only localized text is cached; fallbacks belong to the caller.
func (l *Localizer) Label(lang, messageID, fallback string) string {
	if messageID == "" {
		return fallback
	}

	key := lang + "|" + messageID

	l.mu.Lock()
	defer l.mu.Unlock()

	if label, ok := l.cache.Get(key); ok {
		return label
	}

	label, err := l.localizerFor(lang).Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		var notFound *i18n.MessageNotFoundErr
		if !errors.As(err, &notFound) {
			internal.GetInternalLogger().Warn("Failed to localize label", "message", messageID, "lang", lang, "error", err)
		}
		return fallback
	}

	l.cache.Set(key, label)
	return label
}

// localizerFor must be called with mu held.
func (l *Localizer) localizerFor(lang string) *i18n.Localizer {
	if loc, ok := l.localizers[lang]; ok {
		return loc
	}
	loc := i18n.NewLocalizer(l.bundle, lang, l.defaultLang.String())
	l.localizers[lang] = loc
	return loc
}

func (l *Localizer) reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.localizers = make(map[string]*i18n.Localizer)
	l.cache.Clear()
}

// Languages returns the languages that have messages loaded.
func (l *Localizer) Languages() []language.Tag {
	return l.bundle.LanguageTags()
}
