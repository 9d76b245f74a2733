package api

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// ComplaintStatus is the lifecycle state of a complaint.
type ComplaintStatus string

// Complaint lifecycle states.
const (
	ComplaintStatusOpen       ComplaintStatus = "open"
	ComplaintStatusInProgress ComplaintStatus = "in_progress"
	ComplaintStatusEscalated  ComplaintStatus = "escalated"
	ComplaintStatusResolved   ComplaintStatus = "resolved"
)

// ComplaintLevel is the escalation tier handling a complaint.
type ComplaintLevel string

// Complaint escalation tiers.
const (
	ComplaintLevelSales   ComplaintLevel = "sales"
	ComplaintLevelManager ComplaintLevel = "manager"
)

// ComplaintResponse is the wire shape of an order complaint.
type ComplaintResponse struct {
	ID                int64           `json:"id"`
	OrderID           int64           `json:"order_id"`
	ConsumerID        int64           `json:"consumer_id"`
	SupplierID        int64           `json:"supplier_id"`
	LinkID            int64           `json:"link_id"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Status            ComplaintStatus `json:"status"`
	Level             ComplaintLevel  `json:"level"`
	EscalatedToUserID *int64          `json:"escalated_to_user_id,omitempty"`
	EscalatedByUserID *int64          `json:"escalated_by_user_id,omitempty"`
	Resolution        *string         `json:"resolution,omitempty"`
	ResolvedByUserID  *int64          `json:"resolved_by_user_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         *time.Time      `json:"updated_at,omitempty"`
	ResolvedAt        *time.Time      `json:"resolved_at,omitempty"`
}

// ComplaintCreateRequest files a complaint against an order.
type ComplaintCreateRequest struct {
	OrderID     int64  `json:"order_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ComplaintUpdateRequest carries a partial complaint update.
type ComplaintUpdateRequest struct {
	Status     *ComplaintStatus `json:"status,omitempty"`
	Resolution *string          `json:"resolution,omitempty"`
	Level      *ComplaintLevel  `json:"level,omitempty"`
}

// ComplaintEscalateRequest raises a complaint to a named user.
type ComplaintEscalateRequest struct {
	EscalatedToUserID int64   `json:"escalated_to_user_id"`
	Note              *string `json:"note,omitempty"`
}

// ComplaintListOptions filters ListComplaints.
type ComplaintListOptions struct {
	SupplierID *int64
	ConsumerID *int64
	Status     *ComplaintStatus
	Level      *ComplaintLevel
	Skip       *int
	Limit      *int
}

func (o *ComplaintListOptions) values() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}
	setInt64(values, "supplier_id", o.SupplierID)
	setInt64(values, "consumer_id", o.ConsumerID)
	if o.Status != nil {
		values.Set("status", string(*o.Status))
	}
	if o.Level != nil {
		values.Set("level", string(*o.Level))
	}
	setInt(values, "skip", o.Skip)
	setInt(values, "limit", o.Limit)

	return values
}

// ListComplaints returns complaints visible to the caller.
func (c *Client) ListComplaints(ctx context.Context, opts *ComplaintListOptions) ([]ComplaintResponse, error) {
	var out []ComplaintResponse
	if err := c.get(ctx, "/complaints", opts.values(), &out); err != nil {
		return nil, err
	}

	return out, nil
}

// GetComplaint returns one complaint by id.
func (c *Client) GetComplaint(ctx context.Context, id int64) (*ComplaintResponse, error) {
	var out ComplaintResponse
	if err := c.get(ctx, fmt.Sprintf("/complaints/%d", id), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// CreateComplaint files a complaint against an order.
func (c *Client) CreateComplaint(ctx context.Context, req ComplaintCreateRequest) (*ComplaintResponse, error) {
	var out ComplaintResponse
	if err := c.post(ctx, "/complaints", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateComplaint applies a partial update to one complaint.
func (c *Client) UpdateComplaint(ctx context.Context, id int64, req ComplaintUpdateRequest) (*ComplaintResponse, error) {
	var out ComplaintResponse
	if err := c.put(ctx, fmt.Sprintf("/complaints/%d", id), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// EscalateComplaint raises one complaint to a named user.
func (c *Client) EscalateComplaint(ctx context.Context, id int64, req ComplaintEscalateRequest) (*ComplaintResponse, error) {
	var out ComplaintResponse
	if err := c.post(ctx, fmt.Sprintf("/complaints/%d/escalate", id), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
