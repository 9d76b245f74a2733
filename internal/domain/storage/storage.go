// Package storage defines the durable client-side key/value port. It plays
// the role browser local storage plays for a web client: small string values
// scoped to this installation, surviving restarts.
package storage

import (
	"context"

	"orderflow/internal/errors"
)

// Keys of the values the session and locale layers persist. Consumers
// restoring from them must tolerate individually missing or corrupt entries.
const (
	KeyAuthToken       = "auth_token"
	KeyCurrentUser     = "currentUser"
	KeyCurrentSupplier = "currentSupplier"
	KeyLocale          = "locale"
)

// ErrNotFound is returned by Get when no value exists under the key.
var ErrNotFound = errors.New("storage: key not found")

// Store is a durable string key/value store. Set overwrites, Delete is a
// no-op when the key is absent.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
