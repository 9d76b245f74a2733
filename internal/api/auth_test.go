package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderflow/internal/domain/storage"
)

func TestLoginPostsFormEncodedCredentials(t *testing.T) {
	var contentType, username, password string
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseForm())
		username = r.PostFormValue("username")
		password = r.PostFormValue("password")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-login","token_type":"bearer"}`))
	}))
	ctx := context.Background()

	resp, err := client.Login(ctx, "user@example.com", "pass")
	require.NoError(t, err)

	assert.Equal(t, "application/x-www-form-urlencoded", contentType)
	assert.Equal(t, "user@example.com", username)
	assert.Equal(t, "pass", password)
	assert.Equal(t, "tok-login", resp.AccessToken)

	// The token is attached and persisted before Login returns.
	assert.Equal(t, "tok-login", client.Token())
	stored, err := store.Get(ctx, storage.KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-login", stored)
}

func TestLoginFailureDoesNotTouchToken(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Incorrect email or password"}`))
	}))
	ctx := context.Background()

	_, err := client.Login(ctx, "user@example.com", "bad")
	require.Error(t, err)
	assert.Equal(t, "Incorrect email or password", err.Error())

	assert.Empty(t, client.Token())
	_, err = store.Get(ctx, storage.KeyAuthToken)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestLogoutClearsToken(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ctx := context.Background()

	client.SetToken(ctx, "tok")
	client.Logout(ctx)
	client.Logout(ctx)

	assert.Empty(t, client.Token())
	_, err := store.Get(ctx, storage.KeyAuthToken)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
