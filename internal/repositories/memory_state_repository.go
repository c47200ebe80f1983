package repositories

import (
	"context"
	"sync"
)

// MemoryStateRepository keeps ledger state in process memory. Nothing survives a restart.
type MemoryStateRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStateRepository creates an empty in-memory key-value store
func NewMemoryStateRepository() KeyValueStoreInterface {
	return &MemoryStateRepository{
		values: make(map[string]string),
	}
}

func (r *MemoryStateRepository) Get(_ context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (r *MemoryStateRepository) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[key] = value
	return nil
}

func (r *MemoryStateRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.values, key)
	return nil
}

func (r *MemoryStateRepository) Ping(_ context.Context) error {
	return nil
}
