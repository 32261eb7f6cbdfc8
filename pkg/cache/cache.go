// Package cache stores generated artifacts keyed by layout content.
//
// Generation is deterministic: the same layout, format and options always
// produce the same bytes. Keys are therefore derived from a hash of the
// layout's canonical JSON plus the options (see [Keyer]), and a hit can be
// served without re-running the generator.
//
// Backends:
//   - [NullCache]: caching disabled
//   - [FileCache]: JSON entry files under a directory, for the CLI
//   - [RedisCache]: shared cache for multi-instance API deployments
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with expiration.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}

// Load returns the value for key, or ErrCacheMiss.
func Load(ctx context.Context, c Cache, key string) ([]byte, error) {
	data, hit, err := c.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !hit {
		return nil, ErrCacheMiss
	}
	return data, nil
}
