// Package usecase defines the interfaces for the application's business logic.
package usecase

import (
	"context"

	"orderflow/internal/domain/entity"
)

// LoginInput carries the credentials entered by the user.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// RegisterOwnerInput carries everything needed to create a supplier owner
// account together with its supplier profile.
type RegisterOwnerInput struct {
	Email       string `validate:"required,email"`
	Password    string `validate:"required,min=8"`
	FullName    string `validate:"required"`
	CompanyName string `validate:"required"`
	Phone       string `validate:"omitempty,min=5"`
}

// UpdateSupplierInput carries the editable supplier profile fields.
// Nil fields are left unchanged on the server.
type UpdateSupplierInput struct {
	Name         *string
	Description  *string
	ContactPhone *string
	Address      *string
}

// SessionUsecase manages the authenticated session: who is signed in and,
// for supplier accounts, which supplier profile they act for.
type SessionUsecase interface {
	// Current returns a snapshot of the session state.
	Current() entity.Session

	// Subscribe registers fn to be called after every state change and
	// returns a function that cancels the subscription.
	Subscribe(fn func(entity.Session)) (cancel func())

	// Restore synchronously loads the last persisted session so callers
	// see a plausible state before any network round trip. It never fails.
	Restore(ctx context.Context)

	// Reconcile verifies the restored session against the server and
	// replaces it with fresh data, or clears it if the token is rejected.
	Reconcile(ctx context.Context) error

	// Login authenticates with the given credentials and loads the
	// user profile. Failures leave the session untouched.
	Login(ctx context.Context, input *LoginInput) error

	// RegisterOwner creates a supplier owner account and signs it in.
	RegisterOwner(ctx context.Context, input *RegisterOwnerInput) error

	// Logout clears the session. It is idempotent and never fails.
	Logout(ctx context.Context)

	// Refresh re-fetches the profile in the background. Failures are
	// logged and the current state is kept.
	Refresh(ctx context.Context)

	// UpdateSupplier pushes profile edits to the server and applies the
	// result. Failures are logged and the current state is kept.
	UpdateSupplier(ctx context.Context, input *UpdateSupplierInput)
}
