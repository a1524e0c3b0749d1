package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryCache - кэш в памяти процесса, используется без Redis и в тестах.
// Записи живут ttl (0 - без срока), число записей ограничено maxEntries
// (0 - без ограничения). При переполнении сначала удаляются просроченные
// записи, затем запись с самым ранним сроком.
type MemoryCache struct {
	mu         sync.Mutex
	data       map[string]memoryEntry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

func NewMemoryCache(ttl time.Duration, maxEntries int) *MemoryCache {
	return &MemoryCache{
		data:       make(map[string]memoryEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.data[key]
	if !ok {
		return "", false
	}
	if m.expired(entry, m.now()) {
		delete(m.data, key)
		return "", false
	}
	return entry.value, true
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if _, exists := m.data[key]; !exists && m.maxEntries > 0 && len(m.data) >= m.maxEntries {
		m.evict(now)
	}

	entry := memoryEntry{value: value}
	if m.ttl > 0 {
		entry.expiresAt = now.Add(m.ttl)
	}
	m.data[key] = entry
	return nil
}

// Len возвращает число записей, включая еще не удаленные просроченные
func (m *MemoryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

func (m *MemoryCache) expired(entry memoryEntry, now time.Time) bool {
	return !entry.expiresAt.IsZero() && !now.Before(entry.expiresAt)
}

// evict освобождает место под одну запись. Вызывается под m.mu.
func (m *MemoryCache) evict(now time.Time) {
	for key, entry := range m.data {
		if m.expired(entry, now) {
			delete(m.data, key)
		}
	}
	if len(m.data) < m.maxEntries {
		return
	}

	var oldestKey string
	var oldest time.Time
	first := true
	for key, entry := range m.data {
		if first || entry.expiresAt.Before(oldest) {
			oldestKey, oldest, first = key, entry.expiresAt, false
		}
	}
	delete(m.data, oldestKey)
}
