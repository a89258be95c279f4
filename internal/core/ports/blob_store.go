package ports

import (
	"context"
	"time"
)

// BlobStore is the contract for the content-addressable object store holding
// uploaded signature images and generated mission-order documents.
//
// Put with overwrite=false must be honored atomically, with no
// read-then-write race, because a
// concurrent second signing attempt must lose at the store, not silently
// replace the evidence.
type BlobStore interface {
	// Put stores data at path. When overwrite is false and an object already
	// exists at path, Put fails with a conflict and leaves the existing
	// object untouched.
	Put(ctx context.Context, path string, data []byte, contentType string, overwrite bool) error

	// Get retrieves the object at path, or a not-found error.
	Get(ctx context.Context, path string) ([]byte, error)

	// Delete removes the object at path. Used only to compensate a signature
	// upload whose surrounding transaction failed; deleting a missing object
	// is not an error.
	Delete(ctx context.Context, path string) error

	// SignedURL returns a time-limited read URL for the object at path.
	SignedURL(path string, ttl time.Duration) (string, error)
}
