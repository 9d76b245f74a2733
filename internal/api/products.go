package api

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// ProductResponse is the wire shape of a catalog item. Monetary and
// quantity fields arrive as either native JSON numbers or decimal strings
// depending on the backend version; decimal.Decimal parses both.
type ProductResponse struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	SupplierID    int64            `json:"supplier_id"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discount_price,omitempty"`
	Unit          string           `json:"unit"`
	StockQuantity decimal.Decimal  `json:"stock_quantity"`
	Category      *string          `json:"category,omitempty"`
	IsAvailable   bool             `json:"is_available"`
	IsActive      bool             `json:"is_active"`
	ImageURL      *string          `json:"image_url,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     *time.Time       `json:"updated_at,omitempty"`
}

// ProductCreateRequest adds a catalog item.
type ProductCreateRequest struct {
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	SupplierID    int64            `json:"supplier_id"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discount_price,omitempty"`
	Unit          string           `json:"unit"`
	StockQuantity decimal.Decimal  `json:"stock_quantity"`
	Category      *string          `json:"category,omitempty"`
	IsAvailable   *bool            `json:"is_available,omitempty"`
	ImageURL      *string          `json:"image_url,omitempty"`
}

// ProductUpdateRequest carries a partial catalog update.
type ProductUpdateRequest struct {
	Name          *string          `json:"name,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	DiscountPrice *decimal.Decimal `json:"discount_price,omitempty"`
	Unit          *string          `json:"unit,omitempty"`
	StockQuantity *decimal.Decimal `json:"stock_quantity,omitempty"`
	Category      *string          `json:"category,omitempty"`
	IsAvailable   *bool            `json:"is_available,omitempty"`
	IsActive      *bool            `json:"is_active,omitempty"`
	ImageURL      *string          `json:"image_url,omitempty"`
}

// ProductListOptions filters ListProducts.
type ProductListOptions struct {
	SupplierID *int64
	Skip       *int
	Limit      *int
}

func (o *ProductListOptions) values() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}
	setInt64(values, "supplier_id", o.SupplierID)
	setInt(values, "skip", o.Skip)
	setInt(values, "limit", o.Limit)

	return values
}

// ListProducts returns catalog items, optionally filtered by supplier.
func (c *Client) ListProducts(ctx context.Context, opts *ProductListOptions) ([]ProductResponse, error) {
	var out []ProductResponse
	if err := c.get(ctx, "/products", opts.values(), &out); err != nil {
		return nil, err
	}

	return out, nil
}

// GetProduct returns one catalog item by id.
func (c *Client) GetProduct(ctx context.Context, id int64) (*ProductResponse, error) {
	var out ProductResponse
	if err := c.get(ctx, fmt.Sprintf("/products/%d", id), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// CreateProduct adds a catalog item.
func (c *Client) CreateProduct(ctx context.Context, req ProductCreateRequest) (*ProductResponse, error) {
	var out ProductResponse
	if err := c.post(ctx, "/products", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateProduct applies a partial update to one catalog item.
func (c *Client) UpdateProduct(ctx context.Context, id int64, req ProductUpdateRequest) (*ProductResponse, error) {
	var out ProductResponse
	if err := c.put(ctx, fmt.Sprintf("/products/%d", id), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// DeleteProduct removes one catalog item.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/products/%d", id))
}
