package blobstore

import (
	"context"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for reading and writing named byte blobs.
//
// It is the injectable file-system boundary of the library: production code
// uses LocalStore or an object-storage backend, tests substitute
// MemoryStore. Implementations must be safe for concurrent use.
type Store interface {
	// Read returns the full contents of a blob.
	Read(ctx context.Context, name string) ([]byte, error)
	// Write stores a blob atomically, replacing any previous contents.
	Write(ctx context.Context, name string, data []byte) error
	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
	// List returns the names of all blobs with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}
