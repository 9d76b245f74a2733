package storage

import (
	"context"
	"testing"

	domainstorage "orderflow/internal/domain/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T) *BlobStore {
	t.Helper()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBucketStore(bucket)
}

func TestBlobStore_SetGetRoundtrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, domainstorage.KeyAuthToken, "tok123"))

	got, err := store.Get(ctx, domainstorage.KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "tok123", got)
}

func TestBlobStore_GetMissingKey(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domainstorage.ErrNotFound)
}

func TestBlobStore_DeleteIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, domainstorage.KeyLocale, "ru"))
	require.NoError(t, store.Delete(ctx, domainstorage.KeyLocale))
	// Deleting again must not fail.
	require.NoError(t, store.Delete(ctx, domainstorage.KeyLocale))

	_, err := store.Get(ctx, domainstorage.KeyLocale)
	assert.ErrorIs(t, err, domainstorage.ErrNotFound)
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, domainstorage.KeyCurrentUser, `{"id":"1"}`))
	require.NoError(t, store.Close())

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, domainstorage.KeyCurrentUser)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1"}`, got)
}
