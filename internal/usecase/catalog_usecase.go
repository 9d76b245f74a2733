package usecase

import (
	"context"

	"orderflow/internal/domain/entity"
)

// CatalogUsecase exposes the product catalog scoped to the current session.
type CatalogUsecase interface {
	// SupplierProducts lists the catalog of the session's supplier. It
	// fails with ErrNotAuthenticated when no one is signed in and with
	// ErrNoSupplier when the session carries no supplier profile.
	SupplierProducts(ctx context.Context) ([]*entity.Product, error)
}
