package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// LoginResponse is the password-grant token payload.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterOwnerSupplier is the nested supplier profile created together with
// a new owner account.
type RegisterOwnerSupplier struct {
	CompanyName string  `json:"company_name"`
	LegalName   *string `json:"legal_name,omitempty"`
	TaxID       *string `json:"tax_id,omitempty"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	Country     *string `json:"country,omitempty"`
	Description *string `json:"description,omitempty"`
	Website     *string `json:"website,omitempty"`
}

// RegisterOwnerRequest creates an owner account plus its supplier profile in
// one request.
type RegisterOwnerRequest struct {
	Email    string                `json:"email"`
	Password string                `json:"password"`
	FullName string                `json:"full_name"`
	Phone    *string               `json:"phone,omitempty"`
	Language *string               `json:"language,omitempty"`
	Supplier RegisterOwnerSupplier `json:"supplier"`
}

// Login performs the password-grant authentication call. The endpoint
// follows the form-url-encoded convention rather than the JSON contract the
// rest of the API uses. On success the returned token is attached to the
// client and persisted in the same call.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "create login request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(HeaderXRequestID, uuid.New().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Login request failed", slog.Any("error", err))

		return nil, &Error{Message: connectFailedMessage}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, c.errorFromResponse(resp, c.baseURL+"/auth/login")
	}

	var out LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.logger.Error("Failed to decode login response", slog.Any("error", err))

		return nil, &Error{Message: "Invalid response from server"}
	}

	c.SetToken(ctx, out.AccessToken)

	return &out, nil
}

// CurrentUser fetches the account owning the attached bearer token.
func (c *Client) CurrentUser(ctx context.Context) (*UserResponse, error) {
	var out UserResponse
	if err := c.get(ctx, "/auth/me", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// RegisterOwner creates a new owner account and its supplier profile. It
// does not authenticate; callers follow up with Login using the same
// credentials.
func (c *Client) RegisterOwner(ctx context.Context, req RegisterOwnerRequest) (*UserResponse, error) {
	var out UserResponse
	if err := c.post(ctx, "/auth/register-owner", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Logout drops the held bearer token and its persisted mirror. It cannot
// fail and is safe to call when already anonymous.
func (c *Client) Logout(ctx context.Context) {
	c.SetToken(ctx, "")
}
