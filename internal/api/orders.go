package api

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemResponse is one line of an order.
type OrderItemResponse struct {
	ID         int64           `json:"id"`
	OrderID    int64           `json:"order_id"`
	ProductID  int64           `json:"product_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// OrderResponse is the wire shape of an order.
type OrderResponse struct {
	ID              int64               `json:"id"`
	SupplierID      int64               `json:"supplier_id"`
	ConsumerID      int64               `json:"consumer_id"`
	OrderNumber     string              `json:"order_number"`
	Status          string              `json:"status"`
	DeliveryMethod  *string             `json:"delivery_method,omitempty"`
	DeliveryAddress *string             `json:"delivery_address,omitempty"`
	DeliveryDate    *string             `json:"delivery_date,omitempty"`
	Notes           *string             `json:"notes,omitempty"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	Total           decimal.Decimal     `json:"total"`
	Currency        string              `json:"currency"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"created_at"`
	AcceptedAt      *time.Time          `json:"accepted_at,omitempty"`
	CompletedAt     *time.Time          `json:"completed_at,omitempty"`
	UpdatedAt       *time.Time          `json:"updated_at,omitempty"`
}

// OrderUpdateRequest carries a partial order update; status transitions are
// validated by the backend.
type OrderUpdateRequest struct {
	Status          *string `json:"status,omitempty"`
	DeliveryMethod  *string `json:"delivery_method,omitempty"`
	DeliveryAddress *string `json:"delivery_address,omitempty"`
	DeliveryDate    *string `json:"delivery_date,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// OrderListOptions filters ListOrders.
type OrderListOptions struct {
	SupplierID *int64
	ConsumerID *int64
	Status     *string
	Skip       *int
	Limit      *int
}

func (o *OrderListOptions) values() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}
	setInt64(values, "supplier_id", o.SupplierID)
	setInt64(values, "consumer_id", o.ConsumerID)
	setString(values, "status", o.Status)
	setInt(values, "skip", o.Skip)
	setInt(values, "limit", o.Limit)

	return values
}

// ListOrders returns orders visible to the caller, optionally filtered.
func (c *Client) ListOrders(ctx context.Context, opts *OrderListOptions) ([]OrderResponse, error) {
	var out []OrderResponse
	if err := c.get(ctx, "/orders", opts.values(), &out); err != nil {
		return nil, err
	}

	return out, nil
}

// GetOrder returns one order by id.
func (c *Client) GetOrder(ctx context.Context, id int64) (*OrderResponse, error) {
	var out OrderResponse
	if err := c.get(ctx, fmt.Sprintf("/orders/%d", id), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateOrder applies a partial update to one order.
func (c *Client) UpdateOrder(ctx context.Context, id int64, req OrderUpdateRequest) (*OrderResponse, error) {
	var out OrderResponse
	if err := c.put(ctx, fmt.Sprintf("/orders/%d", id), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
