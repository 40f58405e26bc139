package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/oakvale/homestead/internal/domain"
)

// MemoryStore keeps snapshots in process memory. It is the default
// backend for development and the baseline implementation the other
// stores are tested against.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[string][]byte)}
}

func (m *MemoryStore) SaveSnapshot(_ context.Context, slot string, state *domain.GameState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[slot] = data
	return nil
}

func (m *MemoryStore) LoadSnapshot(_ context.Context, slot string) (*domain.GameState, error) {
	m.mu.RLock()
	data, ok := m.snapshots[slot]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("slot %q: %w", slot, domain.ErrSnapshotNotFound)
	}

	var state domain.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &state, nil
}

func (m *MemoryStore) Ping(context.Context) error { return nil }

func (m *MemoryStore) Close() error { return nil }
