package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/fadedpez/onexrace/pkg/storage"
	goredis "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces every key written by the store
const DefaultPrefix = "onexrace"

// Options configures the redis connection
type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// Store implements storage.KeyValueStore on a redis server
type Store struct {
	client *goredis.Client
	prefix string
}

// New connects to redis and verifies the connection
func New(ctx context.Context, opts Options) (*Store, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewWithClient(client, opts.Prefix), nil
}

// NewWithClient wraps an existing client
func NewWithClient(client *goredis.Client, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{client: client, prefix: prefix}
}

func (s *Store) key(k string) string {
	return s.prefix + ":" + k
}

// Get returns the value for key
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, storage.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

// Set stores value without expiry
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// SetMany writes all entries in a MULTI/EXEC block
func (s *Store) SetMany(ctx context.Context, entries map[string][]byte) error {
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		for key, value := range entries {
			pipe.Set(ctx, s.key(key), value, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// Delete removes key
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Close closes the client
func (s *Store) Close() error {
	return s.client.Close()
}
