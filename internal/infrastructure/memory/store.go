// Package memory is a process-local KeyValueStore, used for tests and for
// sessions that should not outlive the process.
package memory

import (
	"bytes"
	"context"
	"sync"

	"sitesettings/internal/domain"
	"sitesettings/internal/ports/output"
)

var _ output.KeyValueStore = (*Store)(nil)

// Store keeps values in a map.
type Store struct {
	mu     sync.RWMutex
	values map[string][]byte
	writes int
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{values: map[string][]byte{}}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	return bytes.Clone(v), nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = bytes.Clone(value)
	s.writes++
	return nil
}

// Writes returns how many times Set was called.
func (s *Store) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}
