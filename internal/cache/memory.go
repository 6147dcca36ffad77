package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the zero-dependency fallback used when REDIS_ADDR is not
// configured, and the store the handler tests run against. Concurrent page
// renders read under RLock; invalidation takes the write lock per key, so a
// stale read during a race is possible and acceptable.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	tags    map[string]map[string]struct{}
}

type memoryEntry struct {
	val       []byte
	expiresAt time.Time
	tags      []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		tags:    make(map[string]map[string]struct{}),
	}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		m.Invalidate(context.Background(), key)
		return nil, false
	}
	return e.val, true
}

func (m *MemoryStore) Set(_ context.Context, key string, val []byte, ttl time.Duration, tags []string) {
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeLocked(key)
	m.entries[key] = memoryEntry{val: val, expiresAt: expiresAt, tags: tags}
	for _, tag := range tags {
		if m.tags[tag] == nil {
			m.tags[tag] = make(map[string]struct{})
		}
		m.tags[tag][key] = struct{}{}
	}
}

func (m *MemoryStore) Invalidate(_ context.Context, keys ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		m.removeLocked(key)
	}
}

func (m *MemoryStore) InvalidateTag(_ context.Context, tag string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.tags[tag] {
		m.removeLocked(key)
	}
	delete(m.tags, tag)
}

func (m *MemoryStore) removeLocked(key string) {
	e, ok := m.entries[key]
	if !ok {
		return
	}
	for _, tag := range e.tags {
		if set := m.tags[tag]; set != nil {
			delete(set, key)
			if len(set) == 0 {
				delete(m.tags, tag)
			}
		}
	}
	delete(m.entries, key)
}
