package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

// Store is a string key-value store. Implementations must treat Delete of a
// missing key as success.
type Store interface {
	// Get returns ErrNotFound if the key does not exist.
	Get(ctx context.Context, key string) (string, error)

	// Set overwrites any previous value for key.
	Set(ctx context.Context, key string, value string) error

	Delete(ctx context.Context, key string) error

	// Name identifies the backend for display and logging.
	Name() string

	Ping(ctx context.Context) error

	Close() error
}
