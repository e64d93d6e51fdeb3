package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"randomuser-bot/internal/grid"
)

const (
	RateLimitWindowTTL = 1 * time.Minute
)

func GridKey(chatID int64) string {
	return fmt.Sprintf("grid:chat:%d", chatID)
}

func RateLimitKey(userID int64) string {
	return fmt.Sprintf("ratelimit:user:%d", userID)
}

// GetGrid returns grid.ErrNoGrid when the chat has no live grid
func (c *Cache) GetGrid(ctx context.Context, chatID int64) (*grid.Grid, error) {
	var g grid.Grid
	err := c.Get(ctx, GridKey(chatID), &g)
	if errors.Is(err, ErrNotFound) {
		return nil, grid.ErrNoGrid
	}
	if err != nil {
		return nil, err
	}
	if g.Search == nil {
		g.Search = grid.SearchState{}
	}
	return &g, nil
}

func (c *Cache) SetGrid(ctx context.Context, chatID int64, g *grid.Grid, ttl time.Duration) error {
	return c.Set(ctx, GridKey(chatID), g, ttl)
}

func (c *Cache) DeleteGrid(ctx context.Context, chatID int64) error {
	return c.Delete(ctx, GridKey(chatID))
}

func (c *Cache) IncrementUserRateLimit(ctx context.Context, userID int64) (int64, error) {
	return c.IncrementWithExpiry(ctx, RateLimitKey(userID), RateLimitWindowTTL)
}
