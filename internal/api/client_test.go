package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	"orderflow/config"
	"orderflow/internal/domain/storage"
	infrastorage "orderflow/internal/infra/storage"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, storage.Store) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })
	store := infrastorage.NewBucketStore(bucket)

	cfg := &config.Config{}
	cfg.API.BaseURL = srv.URL
	cfg.API.Timeout = 5 * time.Second

	client := New(Params{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Store:  store,
	})

	return client, store
}

func TestDoAttachesBearerTokenAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get(HeaderXRequestID)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	client.SetToken(context.Background(), "tok-123")

	var out map[string]any
	require.NoError(t, client.get(context.Background(), "/ping", nil, &out))

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestDoOmitsAuthorizationWhenAnonymous(t *testing.T) {
	var sawAuth bool
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.get(context.Background(), "/ping", nil, nil))
	assert.False(t, sawAuth)
}

func TestErrorUsesDetailField(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"detail":"Link already exists"}`))
	}))

	err := client.get(context.Background(), "/links", nil, nil)
	require.Error(t, err)
	assert.Equal(t, "Link already exists", err.Error())

	var apiErr *Error
	assert.ErrorAs(t, err, &apiErr)
}

func TestErrorFallsBackToStatusText(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>upstream down</html>"))
	}))

	err := client.get(context.Background(), "/links", nil, nil)
	require.Error(t, err)
	assert.Equal(t, "Bad Gateway", err.Error())
}

func TestConnectionFailureYieldsFriendlyMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	// Point at a port nothing listens on.
	client.baseURL = "http://127.0.0.1:1"

	err := client.get(context.Background(), "/ping", nil, nil)
	require.Error(t, err)
	assert.Equal(t, connectFailedMessage, err.Error())
}

func TestNoContentLeavesOutUntouched(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	out := map[string]string{"keep": "me"}
	require.NoError(t, client.get(context.Background(), "/ping", nil, &out))
	assert.Equal(t, "me", out["keep"])
}

func TestMalformedSuccessBodyIsAnError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": `))
	}))

	var out map[string]any
	err := client.get(context.Background(), "/ping", nil, &out)
	require.Error(t, err)
	assert.Equal(t, "Invalid response from server", err.Error())
}

func TestSetTokenMirrorsToStorage(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ctx := context.Background()

	client.SetToken(ctx, "tok-456")
	stored, err := store.Get(ctx, storage.KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-456", stored)

	client.SetToken(ctx, "")
	assert.Empty(t, client.Token())
	_, err = store.Get(ctx, storage.KeyAuthToken)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestNewRehydratesPersistedToken(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })
	store := infrastorage.NewBucketStore(bucket)
	require.NoError(t, store.Set(context.Background(), storage.KeyAuthToken, "tok-789"))

	cfg := &config.Config{}
	cfg.API.BaseURL = "http://localhost:0"
	cfg.API.Timeout = time.Second

	client := New(Params{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Store:  store,
	})

	assert.Equal(t, "tok-789", client.Token())
}
