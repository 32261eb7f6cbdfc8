// Package redis is a Redis-backed store backend.
//
// Each document is a plain string value under Prefix+key, so several
// deployments can share one database by using different prefixes.
//
//	b, err := redis.New(ctx, redis.Config{Addr: "localhost:6379"})
//	if err != nil {
//	    return err
//	}
//	st := store.New(b, logger)
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/matzehuels/pagesmith/pkg/store"
)

// DefaultPrefix is used when Config.Prefix is empty.
const DefaultPrefix = "pagesmith:"

// Config configures the connection.
type Config struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// Backend implements store.Backend on Redis.
type Backend struct {
	client *goredis.Client
	prefix string
}

// New connects to Redis and verifies the connection.
func New(ctx context.Context, cfg Config) (*Backend, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", cfg.Addr, err)
	}
	return NewFromClient(client, cfg.Prefix), nil
}

// NewFromClient wraps an existing client. Closing the backend closes the
// client.
func NewFromClient(client *goredis.Client, prefix string) *Backend {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Backend{client: client, prefix: prefix}
}

// Name implements store.Backend.
func (b *Backend) Name() string { return "redis" }

// Get implements store.Backend.
func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := b.client.Get(ctx, b.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, nil
}

// Put implements store.Backend. Documents never expire.
func (b *Backend) Put(ctx context.Context, key string, data []byte) error {
	if err := b.client.Set(ctx, b.prefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete implements store.Backend.
func (b *Backend) Delete(ctx context.Context, key string) error {
	if err := b.client.Del(ctx, b.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// Close implements store.Backend.
func (b *Backend) Close() error { return b.client.Close() }

var _ store.Backend = (*Backend)(nil)
