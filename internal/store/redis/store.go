package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/userbinhq/userbin/internal/model"
	"github.com/userbinhq/userbin/internal/store"
)

// documentKey holds the whole user document as a single JSON value. Keeping
// one key preserves the wholesale read/overwrite semantics of the remote
// backend rather than splitting users into per-user keys.
const documentKey = "userbin:document"

// Store is a Redis-backed implementation of the document store
type Store struct {
	client *redis.Client
}

// New creates a new Redis store instance
func New(cfg Config) (*Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Store{client: client}, nil
}

// NewWithClient creates a Redis store with an existing client (for testing)
func NewWithClient(client *redis.Client) *Store {
	return &Store{client: client}
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}

// Ensure Store implements the interface
var _ store.DocumentStore = (*Store)(nil)

// Fetch reads the document; a missing key yields an empty document
func (s *Store) Fetch(ctx context.Context) (*model.UserDocument, error) {
	data, err := s.client.Get(ctx, documentKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.NewUserDocument(), nil
		}
		return nil, fmt.Errorf("%w: %w", model.ErrStoreUnavailable, err)
	}

	var doc model.UserDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrStoreUnavailable, err)
	}
	if doc.Users == nil {
		doc.Users = []model.User{}
	}
	return &doc, nil
}

// Store overwrites the document
func (s *Store) Store(ctx context.Context, doc *model.UserDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrStoreWriteFailed, err)
	}

	if err := s.client.Set(ctx, documentKey, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: %w", model.ErrStoreWriteFailed, err)
	}
	return nil
}
