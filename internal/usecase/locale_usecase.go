package usecase

import (
	"context"

	"orderflow/internal/domain/entity"
)

// LocaleUsecase manages the user's display language and keeps the
// translation engine and the persisted choice in sync.
type LocaleUsecase interface {
	// Current returns the active locale.
	Current() entity.Locale

	// Set switches the active locale, persisting the choice. Unsupported
	// values fall back to the default locale.
	Set(ctx context.Context, locale entity.Locale)

	// Subscribe registers fn to be called after every locale change and
	// returns a function that cancels the subscription.
	Subscribe(fn func(entity.Locale)) (cancel func())
}
