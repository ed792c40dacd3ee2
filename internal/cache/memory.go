package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	key       string
	value     []byte
	expiresAt time.Time
}

// Memory holds entries for a fixed TTL, capped at maxEntries. When full,
// the least recently used entry is evicted.
type Memory struct {
	mu         sync.Mutex
	entries    map[string]*list.Element
	order      *list.List
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

func NewMemory(ttl time.Duration, maxEntries int) *Memory {
	return &Memory{
		entries:    make(map[string]*list.Element),
		order:      list.New(),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, ok := m.entries[key]
	if !ok {
		return nil, false
	}

	entry := el.Value.(*memoryEntry)
	if m.now().After(entry.expiresAt) {
		m.order.Remove(el)
		delete(m.entries, key)
		return nil, false
	}

	m.order.MoveToFront(el)
	return entry.value, true
}

func (m *Memory) Set(ctx context.Context, key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	expiresAt := m.now().Add(m.ttl)

	if el, ok := m.entries[key]; ok {
		entry := el.Value.(*memoryEntry)
		entry.value = value
		entry.expiresAt = expiresAt
		m.order.MoveToFront(el)
		return
	}

	m.entries[key] = m.order.PushFront(&memoryEntry{
		key:       key,
		value:     value,
		expiresAt: expiresAt,
	})

	if m.maxEntries > 0 && m.order.Len() > m.maxEntries {
		oldest := m.order.Back()
		if oldest != nil {
			m.order.Remove(oldest)
			delete(m.entries, oldest.Value.(*memoryEntry).key)
		}
	}
}

func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}

// Sweep removes expired entries and reports how many. Get already drops
// expired entries lazily; Sweep catches keys that are never read again.
func (m *Memory) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0

	for el := m.order.Back(); el != nil; {
		prev := el.Prev()
		entry := el.Value.(*memoryEntry)
		if now.After(entry.expiresAt) {
			m.order.Remove(el)
			delete(m.entries, entry.key)
			removed++
		}
		el = prev
	}

	return removed
}
