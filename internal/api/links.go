package api

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// Wire vocabulary for link statuses. Note "accepted" and "removed"; the
// display layer renames those to "approved" and "rejected".
const (
	LinkStatusPending  = "pending"
	LinkStatusAccepted = "accepted"
	LinkStatusRemoved  = "removed"
	LinkStatusBlocked  = "blocked"
)

// LinkResponse is the wire shape of a supplier/consumer link.
type LinkResponse struct {
	ID                  int64      `json:"id"`
	SupplierID          int64      `json:"supplier_id"`
	ConsumerID          int64      `json:"consumer_id"`
	Status              string     `json:"status"`
	RequestedByConsumer bool       `json:"requested_by_consumer"`
	RequestMessage      *string    `json:"request_message,omitempty"`
	RequestedAt         time.Time  `json:"requested_at"`
	RespondedAt         *time.Time `json:"responded_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           *time.Time `json:"updated_at,omitempty"`
}

// LinkUpdateRequest changes a link's status.
type LinkUpdateRequest struct {
	Status *string `json:"status,omitempty"`
}

// LinkListOptions filters ListLinks.
type LinkListOptions struct {
	SupplierID *int64
	ConsumerID *int64
	Status     *string
	Skip       *int
	Limit      *int
}

func (o *LinkListOptions) values() url.Values {
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

// ListLinks returns supplier/consumer links, optionally filtered.
func (c *Client) ListLinks(ctx context.Context, opts *LinkListOptions) ([]LinkResponse, error) {
	var out []LinkResponse
	if err := c.get(ctx, "/links", opts.values(), &out); err != nil {
		return nil, err
	}

	return out, nil
}

// GetLink returns one link by id.
func (c *Client) GetLink(ctx context.Context, id int64) (*LinkResponse, error) {
	var out LinkResponse
	if err := c.get(ctx, fmt.Sprintf("/links/%d", id), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateLink applies a status change to one link.
func (c *Client) UpdateLink(ctx context.Context, id int64, req LinkUpdateRequest) (*LinkResponse, error) {
	var out LinkResponse
	if err := c.put(ctx, fmt.Sprintf("/links/%d", id), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
