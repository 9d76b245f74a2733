package api

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// IncidentStatus is the lifecycle state of an operational incident.
type IncidentStatus string

// Incident lifecycle states.
const (
	IncidentStatusOpen       IncidentStatus = "open"
	IncidentStatusInProgress IncidentStatus = "in_progress"
	IncidentStatusResolved   IncidentStatus = "resolved"
)

// IncidentResponse is the wire shape of an operational incident.
type IncidentResponse struct {
	ID               int64          `json:"id"`
	OrderID          *int64         `json:"order_id,omitempty"`
	ConsumerID       *int64         `json:"consumer_id,omitempty"`
	SupplierID       *int64         `json:"supplier_id,omitempty"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Status           IncidentStatus `json:"status"`
	AssignedToUserID *int64         `json:"assigned_to_user_id,omitempty"`
	CreatedByUserID  int64          `json:"created_by_user_id"`
	Resolution       *string        `json:"resolution,omitempty"`
	ResolvedByUserID *int64         `json:"resolved_by_user_id,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        *time.Time     `json:"updated_at,omitempty"`
	ResolvedAt       *time.Time     `json:"resolved_at,omitempty"`
}

// IncidentCreateRequest opens an incident.
type IncidentCreateRequest struct {
	OrderID          *int64 `json:"order_id,omitempty"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	AssignedToUserID *int64 `json:"assigned_to_user_id,omitempty"`
}

// IncidentUpdateRequest carries a partial incident update.
type IncidentUpdateRequest struct {
	Status           *IncidentStatus `json:"status,omitempty"`
	Resolution       *string         `json:"resolution,omitempty"`
	AssignedToUserID *int64          `json:"assigned_to_user_id,omitempty"`
}

// IncidentListOptions filters ListIncidents.
type IncidentListOptions struct {
	SupplierID       *int64
	Status           *IncidentStatus
	AssignedToUserID *int64
	Skip             *int
	Limit            *int
}

func (o *IncidentListOptions) values() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}
	setInt64(values, "supplier_id", o.SupplierID)
	if o.Status != nil {
		values.Set("status", string(*o.Status))
	}
	setInt64(values, "assigned_to_user_id", o.AssignedToUserID)
	setInt(values, "skip", o.Skip)
	setInt(values, "limit", o.Limit)

	return values
}

// ListIncidents returns incidents visible to the caller.
func (c *Client) ListIncidents(ctx context.Context, opts *IncidentListOptions) ([]IncidentResponse, error) {
	var out []IncidentResponse
	if err := c.get(ctx, "/incidents", opts.values(), &out); err != nil {
		return nil, err
	}

	return out, nil
}

// GetIncident returns one incident by id.
func (c *Client) GetIncident(ctx context.Context, id int64) (*IncidentResponse, error) {
	var out IncidentResponse
	if err := c.get(ctx, fmt.Sprintf("/incidents/%d", id), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// CreateIncident opens an incident.
func (c *Client) CreateIncident(ctx context.Context, req IncidentCreateRequest) (*IncidentResponse, error) {
	var out IncidentResponse
	if err := c.post(ctx, "/incidents", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateIncident applies a partial update to one incident.
func (c *Client) UpdateIncident(ctx context.Context, id int64, req IncidentUpdateRequest) (*IncidentResponse, error) {
	var out IncidentResponse
	if err := c.put(ctx, fmt.Sprintf("/incidents/%d", id), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
