// Package blobstore abstracts where tabular and structured files live.
//
// A Store reads and writes whole named blobs. MemoryStore is the test
// double, LocalStore covers the local file system, and the minio subpackage
// targets S3-compatible object storage. Missing blobs surface as
// ErrNotFound on every backend.
package blobstore
