package impl

import (
	"context"
	"log/slog"
	"sync"

	"orderflow/config"
	"orderflow/internal/domain/entity"
	"orderflow/internal/domain/storage"
	"orderflow/internal/i18n"
	"orderflow/internal/usecase"
)

// localeService implements usecase.LocaleUsecase. It resolves the startup
// locale from the persisted choice, then the environment, then the
// configured default, and afterwards keeps the translation engine and the
// store in lockstep in both directions.
type localeService struct {
	engine *i18n.Engine
	store  storage.Store
	cfg    *config.Config
	logger *slog.Logger

	mu      sync.RWMutex
	locale  entity.Locale
	subs    map[int]func(entity.Locale)
	nextSub int
}

// NewLocaleService creates a new locale service instance. The engine's
// environment-inferred locale is overridden by a valid persisted choice.
func NewLocaleService(ctx context.Context, engine *i18n.Engine, store storage.Store, cfg *config.Config, logger *slog.Logger) usecase.LocaleUsecase {
	s := &localeService{
		engine: engine,
		store:  store,
		cfg:    cfg,
		logger: logger,
		subs:   make(map[int]func(entity.Locale)),
	}
	s.locale = s.resolveInitial(ctx)
	engine.SetLocale(s.locale)

	// The engine can change locale on its own (another component calling
	// SetLocale on it directly). Mirror such changes back into the store
	// so the two never drift; the equality guard below stops the echo
	// when the change originated here.
	engine.Subscribe(func(locale entity.Locale) {
		s.apply(context.Background(), locale)
	})

	return s
}

// Current returns the active locale.
func (s *localeService) Current() entity.Locale {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.locale
}

// Set switches the active locale. Unsupported values fall back to the
// default locale rather than failing.
func (s *localeService) Set(ctx context.Context, locale entity.Locale) {
	if !locale.IsValid() {
		s.logger.Warn("Ignoring unsupported locale, using default",
			slog.String("locale", string(locale)), slog.String("default", string(entity.DefaultLocale)))
		locale = entity.DefaultLocale
	}
	s.apply(ctx, locale)
	s.engine.SetLocale(locale)
}

// Subscribe registers fn and returns its cancel function.
func (s *localeService) Subscribe(fn func(entity.Locale)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// apply commits a locale change, persists it, and notifies subscribers.
// It is a no-op when the locale is already active, which breaks the cycle
// between this service and the engine.
func (s *localeService) apply(ctx context.Context, locale entity.Locale) {
	s.mu.Lock()
	if s.locale == locale {
		s.mu.Unlock()

		return
	}
	s.locale = locale
	fns := make([]func(entity.Locale), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	if err := s.store.Set(ctx, storage.KeyLocale, string(locale)); err != nil {
		s.logger.Warn("Failed to persist locale", slog.Any("error", err))
	}
	for _, fn := range fns {
		fn(locale)
	}
}

// resolveInitial picks the startup locale: persisted choice first, then the
// engine's environment-inferred locale, then the configured default.
func (s *localeService) resolveInitial(ctx context.Context) entity.Locale {
	if raw, err := s.store.Get(ctx, storage.KeyLocale); err == nil {
		if locale := entity.Locale(raw); locale.IsValid() {
			return locale
		}
		s.logger.Warn("Ignoring unsupported persisted locale", slog.String("locale", raw))
	}

	if locale := s.engine.Locale(); locale.IsValid() && locale != entity.DefaultLocale {
		return locale
	}

	if locale := entity.Locale(s.cfg.Locale.Default); locale.IsValid() {
		return locale
	}

	return entity.DefaultLocale
}
