package kv

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store. Used for STORE_BACKEND=memory and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string]string
	expiry map[string]time.Time
	now    func() time.Time
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data:   make(map[string]string),
		expiry: make(map[string]time.Time),
		now:    time.Now,
	}
}

// Get returns the value under key, dropping it first if it has expired.
func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	v, ok := m.data[key]
	exp, hasExp := m.expiry[key]
	m.mu.RUnlock()

	if ok && hasExp && !m.now().Before(exp) {
		m.evict(key)
		return "", false, nil
	}
	return v, ok, nil
}

// evict drops key if it is still expired. A write that landed after the
// read lock was released keeps its fresh value.
func (m *MemoryStore) evict(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	exp, hasExp := m.expiry[key]
	if !hasExp || m.now().Before(exp) {
		return
	}
	delete(m.data, key)
	delete(m.expiry, key)
}

// Set stores value under key with no expiry.
func (m *MemoryStore) Set(ctx context.Context, key, value string) error {
	return m.SetWithTTL(ctx, key, value, 0)
}

// SetWithTTL stores value under key, expiring it after ttl when ttl > 0.
func (m *MemoryStore) SetWithTTL(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value
	if ttl > 0 {
		m.expiry[key] = m.now().Add(ttl)
	} else {
		delete(m.expiry, key)
	}
	return nil
}

// Remove deletes key.
func (m *MemoryStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	delete(m.expiry, key)
	return nil
}

// Ping always succeeds; it lets MemoryStore stand in for Redis in health checks.
func (m *MemoryStore) Ping(context.Context) error {
	return nil
}

// Len reports the number of stored keys, expired ones included.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
