package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderflow/config"
	"orderflow/internal/domain/entity"
	"orderflow/internal/domain/storage"
	"orderflow/internal/i18n"
)

func newLocaleService(t *testing.T, store storage.Store, defaultLocale string) (*localeService, *i18n.Engine) {
	t.Helper()

	// Keep the engine's environment inference out of the picture.
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")

	cfg := &config.Config{}
	cfg.Locale.Default = defaultLocale
	engine := i18n.NewEngine()

	svc := NewLocaleService(context.Background(), engine, store, cfg, testLogger()).(*localeService)

	return svc, engine
}

func TestLocalePersistedChoiceWins(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, storage.KeyLocale, "ru"))

	svc, engine := newLocaleService(t, store, "en")

	assert.Equal(t, entity.LocaleRussian, svc.Current())
	assert.Equal(t, entity.LocaleRussian, engine.Locale())
}

func TestLocaleInvalidPersistedValueIgnored(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set(context.Background(), storage.KeyLocale, "fr"))

	svc, _ := newLocaleService(t, store, "kz")

	assert.Equal(t, entity.LocaleKazakh, svc.Current())
}

func TestLocaleSetPersistsAndNotifies(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	svc, engine := newLocaleService(t, store, "en")

	var seen []entity.Locale
	cancel := svc.Subscribe(func(locale entity.Locale) { seen = append(seen, locale) })
	defer cancel()

	svc.Set(ctx, entity.LocaleKazakh)

	assert.Equal(t, entity.LocaleKazakh, svc.Current())
	assert.Equal(t, entity.LocaleKazakh, engine.Locale())
	assert.Equal(t, []entity.Locale{entity.LocaleKazakh}, seen)

	raw, err := store.Get(ctx, storage.KeyLocale)
	require.NoError(t, err)
	assert.Equal(t, "kz", raw)
}

func TestLocaleSetSameValueIsNoop(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	svc, _ := newLocaleService(t, store, "en")

	var calls int
	cancel := svc.Subscribe(func(entity.Locale) { calls++ })
	defer cancel()

	svc.Set(ctx, svc.Current())

	assert.Zero(t, calls)
}

func TestLocaleUnsupportedFallsBackToDefault(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	svc, _ := newLocaleService(t, store, "en")

	svc.Set(ctx, entity.Locale("de"))

	assert.Equal(t, entity.DefaultLocale, svc.Current())
}

func TestLocaleEngineChangeMirrorsToStore(t *testing.T) {
	store := newTestStore(t)
	svc, engine := newLocaleService(t, store, "en")

	engine.SetLocale(entity.LocaleRussian)

	assert.Equal(t, entity.LocaleRussian, svc.Current())
	raw, err := store.Get(context.Background(), storage.KeyLocale)
	require.NoError(t, err)
	assert.Equal(t, "ru", raw)
}
