package api

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// CategoryResponse is the wire shape of a supplier's catalog category.
type CategoryResponse struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	SupplierID int64      `json:"supplier_id"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// CategoryCreateRequest adds a catalog category.
type CategoryCreateRequest struct {
	Name       string `json:"name"`
	SupplierID int64  `json:"supplier_id"`
}

// CategoryUpdateRequest carries a partial category update.
type CategoryUpdateRequest struct {
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// CategoryListOptions filters ListCategories.
type CategoryListOptions struct {
	SupplierID *int64
	Skip       *int
	Limit      *int
}

func (o *CategoryListOptions) values() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}
	setInt64(values, "supplier_id", o.SupplierID)
	setInt(values, "skip", o.Skip)
	setInt(values, "limit", o.Limit)

	return values
}

// ListCategories returns catalog categories, optionally filtered by supplier.
func (c *Client) ListCategories(ctx context.Context, opts *CategoryListOptions) ([]CategoryResponse, error) {
	var out []CategoryResponse
	if err := c.get(ctx, "/categories", opts.values(), &out); err != nil {
		return nil, err
	}

	return out, nil
}

// GetCategory returns one category by id.
func (c *Client) GetCategory(ctx context.Context, id int64) (*CategoryResponse, error) {
	var out CategoryResponse
	if err := c.get(ctx, fmt.Sprintf("/categories/%d", id), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// CreateCategory adds a catalog category.
func (c *Client) CreateCategory(ctx context.Context, req CategoryCreateRequest) (*CategoryResponse, error) {
	var out CategoryResponse
	if err := c.post(ctx, "/categories", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateCategory applies a partial update to one category.
func (c *Client) UpdateCategory(ctx context.Context, id int64, req CategoryUpdateRequest) (*CategoryResponse, error) {
	var out CategoryResponse
	if err := c.put(ctx, fmt.Sprintf("/categories/%d", id), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// DeleteCategory removes one category.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/categories/%d", id))
}
