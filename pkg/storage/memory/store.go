package memory

import (
	"context"
	"sync"

	"github.com/fadedpez/onexrace/pkg/storage"
)

// Store is an in-memory storage.KeyValueStore. Contents are lost on exit.
type Store struct {
	mu     sync.RWMutex
	values map[string][]byte
	closed bool
}

// New creates an empty store
func New() *Store {
	return &Store{values: make(map[string][]byte)}
}

// Get returns a copy of the value for key
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, storage.ErrClosed
	}
	value, ok := s.values[key]
	if !ok {
		return nil, storage.ErrKeyNotFound
	}
	return append([]byte(nil), value...), nil
}

// Set stores a copy of value
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrClosed
	}
	s.values[key] = append([]byte(nil), value...)
	return nil
}

// SetMany stores all entries under one lock
func (s *Store) SetMany(ctx context.Context, entries map[string][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrClosed
	}
	for key, value := range entries {
		s.values[key] = append([]byte(nil), value...)
	}
	return nil
}

// Delete removes key
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrClosed
	}
	delete(s.values, key)
	return nil
}

// Keys returns the number of stored keys
func (s *Store) Keys() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// Close marks the store closed
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
