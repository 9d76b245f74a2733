// Package i18n hosts the translation engine's side of locale handling: a
// reactive locale signal and environment-based locale detection. Catalog
// loading and message formatting live with the presentation layer and are
// not part of this package.
package i18n

import (
	"os"
	"strings"
	"sync"

	"orderflow/internal/domain/entity"
)

// Engine holds the translation engine's active locale and notifies
// subscribers when it changes. The locale store synchronizes with this
// signal bidirectionally; both sides write only on actual value change,
// which breaks the update cycle.
type Engine struct {
	mu      sync.RWMutex
	locale  entity.Locale
	subs    map[int]func(entity.Locale)
	nextSub int
}

// NewEngine creates an Engine initialized from the process environment,
// falling back to the default locale.
func NewEngine() *Engine {
	return &Engine{
		locale: FromEnvironment(),
		subs:   make(map[int]func(entity.Locale)),
	}
}

// Locale returns the engine's active locale.
func (e *Engine) Locale() entity.Locale {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.locale
}

// SetLocale changes the active locale and notifies subscribers. Unsupported
// values and writes of the current value are ignored.
func (e *Engine) SetLocale(locale entity.Locale) {
	if !locale.IsValid() {
		return
	}

	e.mu.Lock()
	if e.locale == locale {
		e.mu.Unlock()

		return
	}
	e.locale = locale
	subs := make([]func(entity.Locale), 0, len(e.subs))
	for _, fn := range e.subs {
		subs = append(subs, fn)
	}
	e.mu.Unlock()

	for _, fn := range subs {
		fn(locale)
	}
}

// Subscribe registers an observer for locale changes and returns its
// disposer.
func (e *Engine) Subscribe(fn func(entity.Locale)) func() {
	e.mu.Lock()
	id := e.nextSub
	e.nextSub++
	e.subs[id] = fn
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		delete(e.subs, id)
		e.mu.Unlock()
	}
}

// FromEnvironment infers a supported locale from the POSIX locale
// variables, checked in their conventional precedence order. Values like
// "ru_RU.UTF-8" are normalized to BCP 47 before matching; anything
// unparseable or unsupported resolves to the default.
func FromEnvironment() entity.Locale {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		raw := os.Getenv(name)
		if raw == "" || raw == "C" || raw == "POSIX" {
			continue
		}

		return entity.MatchLocale(normalizePOSIX(raw))
	}

	return entity.DefaultLocale
}

// normalizePOSIX turns "ru_RU.UTF-8@mod" into "ru-RU".
func normalizePOSIX(raw string) string {
	if i := strings.IndexAny(raw, ".@"); i >= 0 {
		raw = raw[:i]
	}

	return strings.ReplaceAll(raw, "_", "-")
}
