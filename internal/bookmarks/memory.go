package bookmarks

import (
	"context"
	"sync"

	"hygrometer/internal/domain"
	"hygrometer/internal/eventbus"
)

// MemoryStore is an in-memory implementation of Store
type MemoryStore struct {
	mu      sync.RWMutex
	regions []domain.Region
	bus     eventbus.EventBus
}

// NewMemoryStore creates a memory-based bookmark store. bus may be nil.
func NewMemoryStore(bus eventbus.EventBus, initial ...domain.Region) *MemoryStore {
	s := &MemoryStore{bus: bus}
	for _, r := range initial {
		if !s.containsLocked(r.Key()) {
			s.regions = append(s.regions, r)
		}
	}
	return s
}

func (s *MemoryStore) Bookmarks() []domain.Region {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	out := make([]domain.Region, len(s.regions))
	copy(out, s.regions)
	return out
}

func (s *MemoryStore) Add(ctx context.Context, region domain.Region) error {
	s.mu.Lock()
	if s.containsLocked(region.Key()) {
		s.mu.Unlock()
		return nil
	}
	s.regions = append(s.regions, region)
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(eventbus.BookmarkAddedEvent{Region: region})
	}
	return nil
}

func (s *MemoryStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	idx := -1
	for i, r := range s.regions {
		if r.Key() == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.regions = append(s.regions[:idx:idx], s.regions[idx+1:]...)
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(eventbus.BookmarkRemovedEvent{Key: key})
	}
	return nil
}

func (s *MemoryStore) Contains(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.containsLocked(key)
}

func (s *MemoryStore) containsLocked(key string) bool {
	for _, r := range s.regions {
		if r.Key() == key {
			return true
		}
	}
	return false
}
