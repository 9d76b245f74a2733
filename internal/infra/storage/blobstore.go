// Package storage provides the durable key/value store backed by a
// gocloud.dev blob bucket. Production wiring uses the fileblob driver with a
// directory under the user's home; tests substitute an in-memory bucket.
package storage

import (
	"context"
	"os"

	domainstorage "orderflow/internal/domain/storage"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"
)

// BlobStore persists each key as one blob holding the raw string value.
type BlobStore struct {
	bucket *blob.Bucket
}

var _ domainstorage.Store = (*BlobStore)(nil)

// NewFileStore opens a file-backed store rooted at dir, creating the
// directory when missing.
func NewFileStore(dir string) (*BlobStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "create storage directory")
	}

	bucket, err := fileblob.OpenBucket(dir, nil)
	if err != nil {
		return nil, errors.Wrap(err, "open file bucket")
	}

	return &BlobStore{bucket: bucket}, nil
}

// NewBucketStore wraps an already opened bucket. Used by tests with memblob.
func NewBucketStore(bucket *blob.Bucket) *BlobStore {
	return &BlobStore{bucket: bucket}
}

// Get returns the value stored under key, or storage.ErrNotFound.
func (s *BlobStore) Get(ctx context.Context, key string) (string, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", domainstorage.ErrNotFound
		}

		return "", errors.Wrapf(err, "read %q", key)
	}

	return string(data), nil
}

// Set overwrites the value stored under key.
func (s *BlobStore) Set(ctx context.Context, key, value string) error {
	if err := s.bucket.WriteAll(ctx, key, []byte(value), nil); err != nil {
		return errors.Wrapf(err, "write %q", key)
	}

	return nil
}

// Delete removes the value stored under key. Deleting an absent key is not
// an error, so teardown paths stay idempotent.
func (s *BlobStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete %q", key)
	}

	return nil
}

// Close releases the underlying bucket.
func (s *BlobStore) Close() error {
	return s.bucket.Close()
}
