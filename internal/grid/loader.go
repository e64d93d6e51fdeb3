package grid

import (
	"context"
	"fmt"

	"randomuser-bot/internal/models"

	"go.uber.org/zap"
)

// BatchSize is the number of users requested per load
const BatchSize = 10

// Fetcher returns users already flattened into rows, in response order
type Fetcher interface {
	FetchUsers(ctx context.Context, count int) ([]models.UserRow, error)
}

// Loader fills a grid with one batch of users
type Loader struct {
	fetcher Fetcher
	logger  *zap.Logger
}

func NewLoader(fetcher Fetcher, logger *zap.Logger) *Loader {
	return &Loader{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Load performs the single fetch for g. On failure the grid stays in the
// loading state with no rows and LoadErr set; nothing is retried.
func (l *Loader) Load(ctx context.Context, g *Grid) error {
	g.Loading = true

	rows, err := l.fetcher.FetchUsers(ctx, BatchSize)
	if err != nil {
		g.LoadErr = err.Error()
		l.logger.Error("failed to load users", zap.Error(err))
		return fmt.Errorf("load users: %w", err)
	}

	// a torn down caller must not see a late publish
	if err := ctx.Err(); err != nil {
		g.LoadErr = err.Error()
		return fmt.Errorf("load users: %w", err)
	}

	g.Publish(rows)

	l.logger.Debug("users loaded", zap.Int("rows", len(rows)))

	return nil
}
