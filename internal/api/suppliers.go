package api

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// SupplierResponse is the wire shape of a supplier business profile.
type SupplierResponse struct {
	ID                 int64      `json:"id"`
	CompanyName        string     `json:"company_name"`
	LegalName          *string    `json:"legal_name,omitempty"`
	TaxID              *string    `json:"tax_id,omitempty"`
	VerificationStatus string     `json:"verification_status"`
	Email              string     `json:"email"`
	Phone              *string    `json:"phone,omitempty"`
	Address            *string    `json:"address,omitempty"`
	City               *string    `json:"city,omitempty"`
	Country            string     `json:"country"`
	Description        *string    `json:"description,omitempty"`
	Website            *string    `json:"website,omitempty"`
	DeliveryAvailable  *bool      `json:"delivery_available,omitempty"`
	PickupAvailable    *bool      `json:"pickup_available,omitempty"`
	LeadTimeDays       *int       `json:"lead_time_days,omitempty"`
	IsActive           bool       `json:"is_active"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

// SupplierCreateRequest registers a new supplier profile.
type SupplierCreateRequest struct {
	CompanyName       string  `json:"company_name"`
	LegalName         *string `json:"legal_name,omitempty"`
	Email             string  `json:"email"`
	Phone             *string `json:"phone,omitempty"`
	Address           *string `json:"address,omitempty"`
	City              *string `json:"city,omitempty"`
	Country           *string `json:"country,omitempty"`
	Description       *string `json:"description,omitempty"`
	Website           *string `json:"website,omitempty"`
	DeliveryAvailable *bool   `json:"delivery_available,omitempty"`
	PickupAvailable   *bool   `json:"pickup_available,omitempty"`
	LeadTimeDays      *int    `json:"lead_time_days,omitempty"`
}

// SupplierUpdateRequest carries a partial profile update.
type SupplierUpdateRequest struct {
	CompanyName       *string `json:"company_name,omitempty"`
	LegalName         *string `json:"legal_name,omitempty"`
	Email             *string `json:"email,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Address           *string `json:"address,omitempty"`
	City              *string `json:"city,omitempty"`
	Country           *string `json:"country,omitempty"`
	Description       *string `json:"description,omitempty"`
	Website           *string `json:"website,omitempty"`
	DeliveryAvailable *bool   `json:"delivery_available,omitempty"`
	PickupAvailable   *bool   `json:"pickup_available,omitempty"`
	LeadTimeDays      *int    `json:"lead_time_days,omitempty"`
	IsActive          *bool   `json:"is_active,omitempty"`
	OwnerEmail        *string `json:"owner_email,omitempty"`
}

// SupplierListOptions filters ListSuppliers.
type SupplierListOptions struct {
	Skip  *int
	Limit *int
}

func (o *SupplierListOptions) values() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}
	setInt(values, "skip", o.Skip)
	setInt(values, "limit", o.Limit)

	return values
}

// CreateSupplier registers a new supplier profile.
func (c *Client) CreateSupplier(ctx context.Context, req SupplierCreateRequest) (*SupplierResponse, error) {
	var out SupplierResponse
	if err := c.post(ctx, "/suppliers", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ListSuppliers returns supplier profiles.
func (c *Client) ListSuppliers(ctx context.Context, opts *SupplierListOptions) ([]SupplierResponse, error) {
	var out []SupplierResponse
	if err := c.get(ctx, "/suppliers", opts.values(), &out); err != nil {
		return nil, err
	}

	return out, nil
}

// GetSupplier returns one supplier profile by id.
func (c *Client) GetSupplier(ctx context.Context, id int64) (*SupplierResponse, error) {
	var out SupplierResponse
	if err := c.get(ctx, fmt.Sprintf("/suppliers/%d", id), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateSupplier applies a partial update to one supplier profile.
func (c *Client) UpdateSupplier(ctx context.Context, id int64, req SupplierUpdateRequest) (*SupplierResponse, error) {
	var out SupplierResponse
	if err := c.put(ctx, fmt.Sprintf("/suppliers/%d", id), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
