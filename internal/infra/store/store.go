// Package store provides whole-value object storage for config JSON blobs.
package store

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
)

// ErrNotFound is returned when the requested key does not exist.
var ErrNotFound = errors.New("object not found")

// ObjectStore abstracts the config blob storage: get and put whole values
// by key. Implementations must treat values as opaque bytes.
type ObjectStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}

// MemoryStore is an in-process ObjectStore, used in tests and for local
// development without cloud credentials.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

// Get returns the stored value for key, or ErrNotFound.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.objects[key]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "key %s", key)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Put stores value under key, replacing any previous value.
func (s *MemoryStore) Put(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.objects[key] = stored
	return nil
}
