package api

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// ConsumerResponse is the wire shape of a consumer business profile.
type ConsumerResponse struct {
	ID           int64      `json:"id"`
	BusinessName string     `json:"business_name"`
	LegalName    *string    `json:"legal_name,omitempty"`
	TaxID        *string    `json:"tax_id,omitempty"`
	Email        string     `json:"email"`
	Phone        *string    `json:"phone,omitempty"`
	Address      *string    `json:"address,omitempty"`
	City         *string    `json:"city,omitempty"`
	Country      string     `json:"country"`
	BusinessType *string    `json:"business_type,omitempty"`
	Description  *string    `json:"description,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// ConsumerListOptions filters ListConsumers.
type ConsumerListOptions struct {
	Skip  *int
	Limit *int
}

func (o *ConsumerListOptions) values() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}
	setInt(values, "skip", o.Skip)
	setInt(values, "limit", o.Limit)

	return values
}

// ListConsumers returns consumer profiles.
func (c *Client) ListConsumers(ctx context.Context, opts *ConsumerListOptions) ([]ConsumerResponse, error) {
	var out []ConsumerResponse
	if err := c.get(ctx, "/consumers", opts.values(), &out); err != nil {
		return nil, err
	}

	return out, nil
}

// GetConsumer returns one consumer profile by id.
func (c *Client) GetConsumer(ctx context.Context, id int64) (*ConsumerResponse, error) {
	var out ConsumerResponse
	if err := c.get(ctx, fmt.Sprintf("/consumers/%d", id), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
