package inmemory

import (
	"context"
	"sync"

	"family-organizer/internal/storage"
)

// StateBackend keeps every key in process memory. Nothing survives a restart.
type StateBackend struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func NewStateBackend() *StateBackend {
	return &StateBackend{
		items: make(map[string][]byte),
	}
}

func (b *StateBackend) Load(_ context.Context, key string) ([]byte, error) {
	b.mu.RLock()
	payload, ok := b.items[key]
	b.mu.RUnlock()
	if !ok {
		return nil, storage.ErrNotFound
	}
	return clonePayload(payload), nil
}

func (b *StateBackend) Save(_ context.Context, key string, payload []byte) error {
	b.mu.Lock()
	b.items[key] = clonePayload(payload)
	b.mu.Unlock()
	return nil
}

// Put stores a raw payload, bypassing encoding. Tests use it to plant corrupt entries.
func (b *StateBackend) Put(key string, payload []byte) {
	b.mu.Lock()
	b.items[key] = clonePayload(payload)
	b.mu.Unlock()
}

func (b *StateBackend) Clear() {
	b.mu.Lock()
	b.items = make(map[string][]byte)
	b.mu.Unlock()
}

func clonePayload(payload []byte) []byte {
	if payload == nil {
		return nil
	}
	cloned := make([]byte, len(payload))
	copy(cloned, payload)
	return cloned
}
