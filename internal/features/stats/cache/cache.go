// Package cache provides the TTL-bounded result cache in front of the stats
// pipeline. The cache is the only shared mutable state in the engine; a
// non-expired entry is returned verbatim so each fid causes at most one
// upstream fetch burst per TTL window.
package cache

import (
	"context"
	"sort"
	"sync"
	"time"

	"standcast-backend/internal/features/stats/models"
)

// Cache stores assembled results keyed by fid. Implementations must be safe
// for concurrent use. Get returns false for a missing or expired entry; Set
// never fails from the caller's point of view (a storage error only costs a
// recomputation later).
type Cache interface {
	Get(ctx context.Context, fid int64) (*models.StatsResult, bool)
	Set(ctx context.Context, fid int64, result *models.StatsResult)
}

type memoryEntry struct {
	result    *models.StatsResult
	storedAt  time.Time
	expiresAt time.Time
}

// Memory is the in-process cache used when no redis is configured. Entries
// expire lazily; when the map grows past maxEntries the oldest entries are
// evicted to bound memory.
type Memory struct {
	mu         sync.Mutex
	entries    map[int64]memoryEntry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

func NewMemory(ttl time.Duration, maxEntries int) *Memory {
	if maxEntries <= 0 {
		maxEntries = 10000
	}
	return &Memory{
		entries:    make(map[int64]memoryEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (m *Memory) Get(_ context.Context, fid int64) (*models.StatsResult, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[fid]
	if !ok {
		return nil, false
	}
	if m.now().After(entry.expiresAt) {
		delete(m.entries, fid)
		return nil, false
	}
	return entry.result, true
}

func (m *Memory) Set(_ context.Context, fid int64, result *models.StatsResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.entries[fid] = memoryEntry{
		result:    result,
		storedAt:  now,
		expiresAt: now.Add(m.ttl),
	}
	if len(m.entries) > m.maxEntries {
		m.evictLocked(now)
	}
}

// evictLocked drops expired entries first, then the oldest live ones until
// the watermark holds.
func (m *Memory) evictLocked(now time.Time) {
	for fid, e := range m.entries {
		if now.After(e.expiresAt) {
			delete(m.entries, fid)
		}
	}
	if len(m.entries) <= m.maxEntries {
		return
	}

	type aged struct {
		fid      int64
		storedAt time.Time
	}
	all := make([]aged, 0, len(m.entries))
	for fid, e := range m.entries {
		all = append(all, aged{fid: fid, storedAt: e.storedAt})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].storedAt.Before(all[j].storedAt) })
	for _, a := range all[:len(m.entries)-m.maxEntries] {
		delete(m.entries, a.fid)
	}
}
