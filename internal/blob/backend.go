// Package blob provides the durable key/value storage behind the record store.
//
// A Backend stores opaque byte blobs under string keys. Each Put replaces the
// whole value in one step; readers never observe a partial write.
//
// Implementations:
//   - SQLite: on-device file, durable when Put returns
//   - Memory: process-local, for tests and throwaway sessions
package blob

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -destination=mocks/mock_backend.go -package=mocks github.com/roach88/terminus/internal/blob Backend

import "context"

// Backend is an opaque blob store keyed by string.
type Backend interface {
	// Get returns the value stored under key. ok is false if nothing is stored.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Close releases underlying resources.
	Close() error
}
