package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"randomuser-bot/internal/grid"

	"go.uber.org/zap"
)

// Store keeps one live grid per chat
type Store interface {
	GetGrid(ctx context.Context, chatID int64) (*grid.Grid, error)
	SetGrid(ctx context.Context, chatID int64, g *grid.Grid, ttl time.Duration) error
}

// Manager serializes grid updates per chat on top of a Store.
// telebot runs handlers concurrently, so every read-modify-write of a
// chat's grid happens under that chat's lock.
type Manager struct {
	store  Store
	ttl    time.Duration
	logger *zap.Logger

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewManager(store Store, ttl time.Duration, logger *zap.Logger) *Manager {
	return &Manager{
		store:  store,
		ttl:    ttl,
		logger: logger,
		locks:  make(map[int64]*sync.Mutex),
	}
}

func (m *Manager) lock(chatID int64) func() {
	m.mu.Lock()
	l, ok := m.locks[chatID]
	if !ok {
		l = &sync.Mutex{}
		m.locks[chatID] = l
	}
	m.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// Get returns the chat's grid or grid.ErrNoGrid
func (m *Manager) Get(ctx context.Context, chatID int64) (*grid.Grid, error) {
	g, err := m.store.GetGrid(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("get grid: %w", err)
	}
	return g, nil
}

// Start replaces the chat's grid with a new one and runs its single load.
// The loading state is saved before the fetch so a concurrent render
// shows the loading indicator.
func (m *Manager) Start(ctx context.Context, chatID int64, loader *grid.Loader) (*grid.Grid, error) {
	unlock := m.lock(chatID)
	defer unlock()

	g := grid.New()
	if err := m.store.SetGrid(ctx, chatID, g, m.ttl); err != nil {
		return nil, fmt.Errorf("save grid: %w", err)
	}

	loadErr := loader.Load(ctx, g)

	if err := m.store.SetGrid(ctx, chatID, g, m.ttl); err != nil {
		return nil, fmt.Errorf("save grid: %w", err)
	}

	if loadErr != nil {
		m.logger.Warn("grid left loading",
			zap.Int64("chat_id", chatID),
			zap.Error(loadErr),
		)
		return g, loadErr
	}

	m.logger.Info("grid started",
		zap.Int64("chat_id", chatID),
		zap.Int("rows", len(g.Rows)),
	)

	return g, nil
}

// Update applies fn to the chat's grid and saves it when fn succeeds
func (m *Manager) Update(ctx context.Context, chatID int64, fn func(g *grid.Grid) error) (*grid.Grid, error) {
	unlock := m.lock(chatID)
	defer unlock()

	g, err := m.store.GetGrid(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("get grid: %w", err)
	}

	if err := fn(g); err != nil {
		return g, err
	}

	if err := m.store.SetGrid(ctx, chatID, g, m.ttl); err != nil {
		return nil, fmt.Errorf("save grid: %w", err)
	}

	return g, nil
}
