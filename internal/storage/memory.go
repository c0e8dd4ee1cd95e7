package storage

import (
	"context"
	"sync"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
)

// MemoryStore keeps blobs in process. Used by the memory backend and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]domain.Upload
}

// NewMemoryStore creates an empty in-memory blob store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]domain.Upload)}
}

// Put stores a copy of the upload
func (m *MemoryStore) Put(ctx context.Context, key string, upload domain.Upload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	upload.Body = append([]byte(nil), upload.Body...)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = upload
	return "memory://" + key, nil
}

// Delete removes the object, missing keys are ignored
func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

// Get returns a stored object
func (m *MemoryStore) Get(key string) (domain.Upload, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.objects[key]
	return u, ok
}

// Len returns the number of stored objects
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
