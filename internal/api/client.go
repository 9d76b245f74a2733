// Package api is the typed client for the ordering platform's REST backend.
// It owns URL construction, bearer-token handling and error normalization;
// the per-resource files in this package are thin typed wrappers over it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"orderflow/config"
	"orderflow/internal/domain/storage"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// HeaderXRequestID tags every outgoing request so backend logs can be
// correlated with client-side failures.
const HeaderXRequestID = "X-Request-ID"

const connectFailedMessage = "Unable to connect to server. Please check your connection."

// Error is the only failure shape this package surfaces. It carries the
// human-readable message extracted from the backend's error body (its
// "detail" field) or the HTTP status text when no detail is available.
// The numeric status is deliberately not exposed; callers present the
// message, they do not branch on codes.
type Error struct {
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Client performs all HTTP communication with the backend. It holds the
// bearer token of the current session and mirrors every token change into
// durable storage, so the token held here and the persisted one never
// diverge.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	store      storage.Store

	mu    sync.RWMutex
	token string
}

// Params holds dependencies for the Client, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Store  storage.Store
}

// New creates a Client and rehydrates the bearer token persisted by a
// previous run, if any.
func New(params Params) *Client {
	client := &Client{
		baseURL:    strings.TrimRight(params.Config.API.BaseURL, "/"),
		httpClient: &http.Client{Timeout: params.Config.API.Timeout},
		logger:     params.Logger,
		store:      params.Store,
	}

	if token, err := params.Store.Get(context.Background(), storage.KeyAuthToken); err == nil {
		client.token = token
	}

	return client
}

// Token returns the bearer token currently attached to requests, empty when
// anonymous.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.token
}

// SetToken replaces the held bearer token and mirrors the change into
// durable storage in the same call. An empty token clears both. Storage
// failures are logged but do not fail the call; the in-memory token is
// authoritative until the next restart.
func (c *Client) SetToken(ctx context.Context, token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	var err error
	if token != "" {
		err = c.store.Set(ctx, storage.KeyAuthToken, token)
	} else {
		err = c.store.Delete(ctx, storage.KeyAuthToken)
	}
	if err != nil {
		c.logger.Warn("Failed to persist auth token", slog.Any("error", err))
	}
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, params, nil, out)
}

func (c *Client) post(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodPost, endpoint, nil, body, out)
}

func (c *Client) put(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodPut, endpoint, nil, body, out)
}

func (c *Client) delete(ctx context.Context, endpoint string) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil, nil)
}

// do performs one JSON request against baseURL+endpoint. Query parameters
// are already filtered of absent values by the option structs. A 204 or an
// empty body is a success with out left untouched.
func (c *Client) do(ctx context.Context, method, endpoint string, params url.Values, body, out any) error {
	fullURL := c.baseURL + endpoint
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return errors.Wrap(err, "create request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderXRequestID, uuid.New().String())
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Request failed", slog.String("method", method), slog.String("url", fullURL), slog.Any("error", err))

		return &Error{Message: connectFailedMessage}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.errorFromResponse(resp, fullURL)
	}

	if resp.StatusCode == http.StatusNoContent || resp.ContentLength == 0 || out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response", slog.String("url", fullURL), slog.Any("error", err))

		return &Error{Message: "Invalid response from server"}
	}

	return nil
}

// errorFromResponse normalizes a non-2xx response into an *Error. The body
// is parsed for a "detail" message; a failed parse falls back to the status
// text. Only 5xx responses are logged as faults, 4xx are expected
// user/client errors.
func (c *Client) errorFromResponse(resp *http.Response, fullURL string) error {
	message := http.StatusText(resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		message = payload.Detail
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		c.logger.Error("Server error",
			slog.Int("status", resp.StatusCode),
			slog.String("url", fullURL),
			slog.String("message", message))
	}

	return &Error{Message: message}
}

func setInt(values url.Values, key string, value *int) {
	if value != nil {
		values.Set(key, strconv.Itoa(*value))
	}
}

func setInt64(values url.Values, key string, value *int64) {
	if value != nil {
		values.Set(key, strconv.FormatInt(*value, 10))
	}
}

func setString(values url.Values, key string, value *string) {
	if value != nil {
		values.Set(key, *value)
	}
}
