package ratelimit

import (
	"context"
	"sync"
	"time"
)

type counterKey struct {
	clientID string
	size     time.Duration
	index    int64
}

// MemoryStore keeps counters in process memory. Counters are lost on restart.
type MemoryStore struct {
	mu        sync.Mutex
	counters  map[counterKey]int
	retention time.Duration
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		counters:  make(map[counterKey]int),
		retention: Retention,
	}
}

// Take implements Store. Expired counters are pruned on every call.
func (s *MemoryStore) Take(_ context.Context, clientID string, now time.Time, windows []Window) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prune(now)

	keys := make([]counterKey, len(windows))
	for i, w := range windows {
		keys[i] = counterKey{clientID: clientID, size: w.Size, index: w.Index(now)}
		if s.counters[keys[i]] >= w.Limit {
			return i, nil
		}
	}

	for _, k := range keys {
		s.counters[k]++
	}
	return -1, nil
}

// Len returns the number of live counters.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.counters)
}

func (s *MemoryStore) prune(now time.Time) {
	for k := range s.counters {
		start := time.Unix(0, k.index*int64(k.size))
		if now.Sub(start) > s.retention {
			delete(s.counters, k)
		}
	}
}
