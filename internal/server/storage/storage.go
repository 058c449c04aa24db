// Package storage provides the object-storage gateway used for file payloads.
package storage

import "context"

// ObjectStore abstracts the bucket operations the server needs. All calls
// perform network I/O; failures surface directly to the caller.
type ObjectStore interface {
	// Put uploads body under key and returns the object's public URL.
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)

	// Get returns the object's bytes, or common.ErrNotFound if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes the object. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
