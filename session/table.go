package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type tableEntry[T any] struct {
	value     T
	touchedAt time.Time
}

// Table keeps values in memory under random ids until they go unused for
// longer than the TTL. A zero TTL never expires.
type Table[T any] struct {
	mu         sync.Mutex
	entries    map[string]tableEntry[T]
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// NewTable creates a table. maxEntries bounds memory; the least recently
// written entry is dropped when it is reached.
func NewTable[T any](ttl time.Duration, maxEntries int) *Table[T] {
	if maxEntries <= 0 {
		maxEntries = 1024
	}
	return &Table[T]{
		entries:    make(map[string]tableEntry[T]),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// TTL returns how long an untouched entry lives
func (t *Table[T]) TTL() time.Duration {
	return t.ttl
}

// Put stores v under a new id
func (t *Table[T]) Put(v T) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := uuid.NewString()
	t.storeLocked(id, v)
	return id
}

// Set replaces the value under id and restarts its TTL. It reports false,
// storing nothing, when id is unknown or expired.
func (t *Table[T]) Set(id string, v T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.entries[id]
	if !ok || t.expired(entry, t.now()) {
		return false
	}
	t.storeLocked(id, v)
	return true
}

// Get returns the value for id if it exists and has not expired
func (t *Table[T]) Get(id string) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var zero T
	entry, ok := t.entries[id]
	if !ok {
		return zero, false
	}
	if t.expired(entry, t.now()) {
		delete(t.entries, id)
		return zero, false
	}
	return entry.value, true
}

// Delete removes id
func (t *Table[T]) Delete(id string) {
	t.mu.Lock()
	delete(t.entries, id)
	t.mu.Unlock()
}

// Len returns the number of stored entries, expired ones included
func (t *Table[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

func (t *Table[T]) storeLocked(id string, v T) {
	now := t.now()
	t.pruneLocked(now)
	if _, exists := t.entries[id]; !exists && len(t.entries) >= t.maxEntries {
		t.dropOldestLocked()
	}
	t.entries[id] = tableEntry[T]{value: v, touchedAt: now}
}

func (t *Table[T]) expired(entry tableEntry[T], now time.Time) bool {
	return t.ttl > 0 && now.Sub(entry.touchedAt) > t.ttl
}

func (t *Table[T]) pruneLocked(now time.Time) {
	for id, entry := range t.entries {
		if t.expired(entry, now) {
			delete(t.entries, id)
		}
	}
}

func (t *Table[T]) dropOldestLocked() {
	var (
		oldestID string
		oldestAt time.Time
	)
	for id, entry := range t.entries {
		if oldestID == "" || entry.touchedAt.Before(oldestAt) {
			oldestID = id
			oldestAt = entry.touchedAt
		}
	}
	delete(t.entries, oldestID)
}
