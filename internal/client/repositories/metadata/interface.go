// Package metadata persists small key-value records that must survive client
// restarts: the access token, the cached user profile, and the device
// identifier.
package metadata

import (
	"context"
)

// Repository is the durable key-value store behind the session layer.
// Get returns (nil, nil) when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
