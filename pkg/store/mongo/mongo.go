// Package mongo is a MongoDB-backed store backend.
//
// Each document key maps to one MongoDB document whose _id is the key and
// whose data field holds the JSON payload as a string:
//
//	{ "_id": "react-ui-builder-state", "data": "{...}", "updatedAt": ISODate(...) }
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/pagesmith/pkg/store"
)

// Defaults used when Config fields are empty.
const (
	DefaultDatabase   = "pagesmith"
	DefaultCollection = "documents"
)

// Config configures the connection.
type Config struct {
	URI        string
	Database   string
	Collection string
}

// Backend implements store.Backend on a MongoDB collection.
type Backend struct {
	client *driver.Client
	coll   *driver.Collection
}

type document struct {
	Key       string    `bson:"_id"`
	Data      string    `bson:"data"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// New connects to MongoDB and verifies the connection.
func New(ctx context.Context, cfg Config) (*Backend, error) {
	if cfg.Database == "" {
		cfg.Database = DefaultDatabase
	}
	if cfg.Collection == "" {
		cfg.Collection = DefaultCollection
	}
	client, err := driver.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &Backend{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Name implements store.Backend.
func (b *Backend) Name() string { return "mongo" }

// Get implements store.Backend.
func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	var doc document
	err := b.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, driver.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo find %s: %w", key, err)
	}
	return []byte(doc.Data), nil
}

// Put implements store.Backend.
func (b *Backend) Put(ctx context.Context, key string, data []byte) error {
	doc := document{Key: key, Data: string(data), UpdatedAt: time.Now().UTC()}
	_, err := b.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo replace %s: %w", key, err)
	}
	return nil
}

// Delete implements store.Backend.
func (b *Backend) Delete(ctx context.Context, key string) error {
	if _, err := b.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("mongo delete %s: %w", key, err)
	}
	return nil
}

// Close disconnects the client.
func (b *Backend) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return b.client.Disconnect(ctx)
}

var _ store.Backend = (*Backend)(nil)
