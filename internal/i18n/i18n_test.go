package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"orderflow/internal/domain/entity"
)

func TestSetLocaleNotifiesSubscribers(t *testing.T) {
	engine := NewEngine()
	engine.SetLocale(entity.LocaleEnglish)

	var seen []entity.Locale
	cancel := engine.Subscribe(func(locale entity.Locale) { seen = append(seen, locale) })
	defer cancel()

	engine.SetLocale(entity.LocaleKazakh)
	engine.SetLocale(entity.LocaleKazakh) // same value, no event
	engine.SetLocale(entity.Locale("xx")) // unsupported, ignored

	assert.Equal(t, []entity.Locale{entity.LocaleKazakh}, seen)
	assert.Equal(t, entity.LocaleKazakh, engine.Locale())
}

func TestSubscribeCancelStopsEvents(t *testing.T) {
	engine := NewEngine()
	engine.SetLocale(entity.LocaleEnglish)

	var calls int
	cancel := engine.Subscribe(func(entity.Locale) { calls++ })
	cancel()

	engine.SetLocale(entity.LocaleRussian)
	assert.Zero(t, calls)
}

func TestFromEnvironmentResolvesPOSIXLocales(t *testing.T) {
	tests := []struct {
		name   string
		lcAll  string
		lang   string
		expect entity.Locale
	}{
		{name: "russian with encoding", lcAll: "ru_RU.UTF-8", expect: entity.LocaleRussian},
		{name: "kazakh", lcAll: "kk_KZ.UTF-8", expect: entity.LocaleKazakh},
		{name: "lc_all beats lang", lcAll: "ru_RU", lang: "kk_KZ", expect: entity.LocaleRussian},
		{name: "c locale skipped", lcAll: "C", lang: "ru_RU.UTF-8", expect: entity.LocaleRussian},
		{name: "unsupported language", lcAll: "ja_JP.UTF-8", expect: entity.DefaultLocale},
		{name: "nothing set", expect: entity.DefaultLocale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LC_ALL", tt.lcAll)
			t.Setenv("LC_MESSAGES", "")
			t.Setenv("LANG", tt.lang)

			assert.Equal(t, tt.expect, FromEnvironment())
		})
	}
}

func TestNormalizePOSIX(t *testing.T) {
	assert.Equal(t, "ru-RU", normalizePOSIX("ru_RU.UTF-8"))
	assert.Equal(t, "kk-KZ", normalizePOSIX("kk_KZ.UTF-8@latin"))
	assert.Equal(t, "en", normalizePOSIX("en"))
}
