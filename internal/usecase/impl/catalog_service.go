package impl

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/pkg/errors"

	"orderflow/internal/api"
	"orderflow/internal/domain/entity"
	domainerrors "orderflow/internal/domain/errors"
	"orderflow/internal/mapper"
	"orderflow/internal/usecase"
)

// catalogService implements usecase.CatalogUsecase on top of the API client,
// scoping queries to the supplier held by the session.
type catalogService struct {
	client  *api.Client
	session usecase.SessionUsecase
	logger  *slog.Logger
}

// NewCatalogService creates a new catalog service instance.
func NewCatalogService(client *api.Client, session usecase.SessionUsecase, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		client:  client,
		session: session,
		logger:  logger,
	}
}

// SupplierProducts lists the catalog of the session's supplier.
func (s *catalogService) SupplierProducts(ctx context.Context) ([]*entity.Product, error) {
	state := s.session.Current()
	if state.User == nil {
		return nil, domainerrors.ErrNotAuthenticated
	}
	if state.Supplier == nil {
		return nil, domainerrors.ErrNoSupplier
	}

	supplierID, err := strconv.ParseInt(state.Supplier.ID, 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "parse supplier id")
	}

	responses, err := s.client.ListProducts(ctx, &api.ProductListOptions{SupplierID: &supplierID})
	if err != nil {
		return nil, err
	}

	products := make([]*entity.Product, 0, len(responses))
	for i := range responses {
		products = append(products, mapper.Product(&responses[i]))
	}

	return products, nil
}
