package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// MemoryStore is the in-process fallback used when REDIS_ADDR is not set.
// Values go through JSON so callers see the same copy semantics as Redis.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]memoryItem
	now   func() time.Time
}

type memoryItem struct {
	data      []byte
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[string]memoryItem),
		now:   time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string, dest any) (bool, error) {
	s.mu.RLock()
	item, ok := s.items[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if s.expired(item) {
		s.mu.Lock()
		// a Set may have replaced the entry since the read lock was released
		if cur, ok := s.items[key]; ok && s.expired(cur) {
			delete(s.items, key)
		}
		s.mu.Unlock()
		return false, nil
	}
	if err := json.Unmarshal(item.data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	item := memoryItem{data: data}
	if ttl > 0 {
		item.expiresAt = s.now().Add(ttl)
	}
	s.mu.Lock()
	s.items[key] = item
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) expired(item memoryItem) bool {
	return !item.expiresAt.IsZero() && !s.now().Before(item.expiresAt)
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) Name() string { return "memory" }
