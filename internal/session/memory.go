package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"randomuser-bot/internal/grid"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore keeps grids in process memory. Grids are stored as JSON so
// callers never share state with the store, matching the Redis backend.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[int64]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[int64]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) GetGrid(ctx context.Context, chatID int64) (*grid.Grid, error) {
	s.mu.Lock()
	entry, ok := s.entries[chatID]
	if ok && !s.now().Before(entry.expiresAt) {
		delete(s.entries, chatID)
		ok = false
	}
	s.mu.Unlock()

	if !ok {
		return nil, grid.ErrNoGrid
	}

	var g grid.Grid
	if err := json.Unmarshal(entry.data, &g); err != nil {
		return nil, fmt.Errorf("unmarshal grid: %w", err)
	}
	if g.Search == nil {
		g.Search = grid.SearchState{}
	}
	return &g, nil
}

func (s *MemoryStore) SetGrid(ctx context.Context, chatID int64, g *grid.Grid, ttl time.Duration) error {
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("marshal grid: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[chatID] = memoryEntry{
		data:      data,
		expiresAt: s.now().Add(ttl),
	}
	return nil
}
