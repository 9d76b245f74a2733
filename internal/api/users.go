package api

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// UserResponse is the wire shape of a platform account.
type UserResponse struct {
	ID         int64      `json:"id"`
	Email      string     `json:"email"`
	FullName   string     `json:"full_name"`
	Phone      *string    `json:"phone,omitempty"`
	Role       string     `json:"role"`
	SupplierID *int64     `json:"supplier_id,omitempty"`
	ConsumerID *int64     `json:"consumer_id,omitempty"`
	IsActive   bool       `json:"is_active"`
	Language   string     `json:"language"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// UserCreateRequest creates a staff account under the caller's supplier.
type UserCreateRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName string  `json:"full_name"`
	Phone    *string `json:"phone,omitempty"`
	Role     string  `json:"role"`
	Language *string `json:"language,omitempty"`
}

// UserUpdateRequest carries a partial account update; nil fields are left
// unchanged by the backend.
type UserUpdateRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Language *string `json:"language,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// OwnershipTransferRequest hands the owner role to another staff account.
type OwnershipTransferRequest struct {
	NewOwnerUserID int64 `json:"new_owner_user_id"`
}

// UserListOptions filters ListUsers.
type UserListOptions struct {
	Skip  *int
	Limit *int
}

func (o *UserListOptions) values() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}
	setInt(values, "skip", o.Skip)
	setInt(values, "limit", o.Limit)

	return values
}

// ListUsers returns the accounts visible to the caller.
func (c *Client) ListUsers(ctx context.Context, opts *UserListOptions) ([]UserResponse, error) {
	var out []UserResponse
	if err := c.get(ctx, "/users", opts.values(), &out); err != nil {
		return nil, err
	}

	return out, nil
}

// GetUser returns one account by id.
func (c *Client) GetUser(ctx context.Context, id int64) (*UserResponse, error) {
	var out UserResponse
	if err := c.get(ctx, fmt.Sprintf("/users/%d", id), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// CreateUser creates a staff account.
func (c *Client) CreateUser(ctx context.Context, req UserCreateRequest) (*UserResponse, error) {
	var out UserResponse
	if err := c.post(ctx, "/users", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateUser applies a partial update to one account.
func (c *Client) UpdateUser(ctx context.Context, id int64, req UserUpdateRequest) (*UserResponse, error) {
	var out UserResponse
	if err := c.put(ctx, fmt.Sprintf("/users/%d", id), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// DeleteUser removes one account.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/users/%d", id))
}

// DeleteSelf removes the caller's own account.
func (c *Client) DeleteSelf(ctx context.Context) error {
	return c.delete(ctx, "/users/me")
}

// TransferOwnership hands the owner role to another account of the same
// supplier.
func (c *Client) TransferOwnership(ctx context.Context, req OwnershipTransferRequest) (*UserResponse, error) {
	var out UserResponse
	if err := c.post(ctx, "/users/transfer-ownership", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
