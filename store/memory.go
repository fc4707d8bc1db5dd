package store

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store used by tests and by the server when no
// database is configured. Contents do not survive a restart.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemoryStore creates an empty in-memory slot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

// Load returns a copy of the slot contents.
func (s *MemoryStore) Load(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.slots[key]
	if !ok {
		return nil, ErrSlotNotFound
	}

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Save overwrites the slot with a copy of data.
func (s *MemoryStore) Save(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, len(data))
	copy(buf, data)
	s.slots[key] = buf
	return nil
}
