package storage

import (
	"context"
	"slices"
	"sync"
)

// MemoryKV keeps slots in process memory. Values are copied in and out.
type MemoryKV struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{m: map[string][]byte{}}
}

func (r *MemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.m[key]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(v), nil
}

func (r *MemoryKV) Put(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[key] = slices.Clone(value)
	return nil
}

func (r *MemoryKV) Close() error { return nil }
