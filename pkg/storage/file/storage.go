package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fadedpez/onexrace/pkg/storage"
)

// Options represents file storage configuration options
type Options struct {
	Path string
}

// NewOptions creates a new Options with default values
func NewOptions() *Options {
	return &Options{
		Path: "onexrace.json",
	}
}

// Storage implements storage.KeyValueStore on a single JSON file. The whole
// file is rewritten on every write.
type Storage struct {
	path   string
	mu     sync.RWMutex
	values map[string]json.RawMessage
}

// New creates a new file storage instance, loading the file if it exists
func New(options *Options) (*Storage, error) {
	if options == nil {
		options = NewOptions()
	}

	s := &Storage{
		path:   options.Path,
		values: make(map[string]json.RawMessage),
	}

	// Load existing values from file
	if err := s.load(); err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return s, nil
}

// Get returns the raw JSON value for key
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, storage.ErrKeyNotFound
	}

	return append([]byte(nil), value...), nil
}

// Set stores value, which must be valid JSON, and rewrites the file
func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	return s.SetMany(ctx, map[string][]byte{key: value})
}

// SetMany stores all entries and rewrites the file once. The in-memory
// values only change after the file is replaced.
func (s *Storage) SetMany(ctx context.Context, entries map[string][]byte) error {
	for key, value := range entries {
		if !json.Valid(value) {
			return fmt.Errorf("value for %s is not valid JSON", key)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.staged()
	for key, value := range entries {
		next[key] = append(json.RawMessage(nil), value...)
	}

	if err := s.save(next); err != nil {
		return err
	}
	s.values = next
	return nil
}

// Delete removes key and rewrites the file
func (s *Storage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; !ok {
		return nil
	}
	next := s.staged()
	delete(next, key)

	if err := s.save(next); err != nil {
		return err
	}
	s.values = next
	return nil
}

// Close is a no-op; every write is already on disk
func (s *Storage) Close() error {
	return nil
}

// Helper functions

func (s *Storage) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	return json.Unmarshal(data, &s.values)
}

// staged returns a shallow copy of the current values to apply a write to
func (s *Storage) staged() map[string]json.RawMessage {
	next := make(map[string]json.RawMessage, len(s.values)+1)
	for k, v := range s.values {
		next[k] = v
	}
	return next
}

func (s *Storage) save(values map[string]json.RawMessage) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	// Write to a temp file and rename so a crash never leaves a torn file
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace file: %w", err)
	}

	return nil
}
