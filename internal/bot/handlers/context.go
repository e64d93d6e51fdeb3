package handlers

import (
	"randomuser-bot/internal/config"
	"randomuser-bot/internal/grid"
	"randomuser-bot/internal/session"

	"go.uber.org/zap"
)

// Context contains deps for all handlers
type Context struct {
	Sessions *session.Manager
	Loader   *grid.Loader
	OnSelect SelectHandler
	Config   *config.Config
	Logger   *zap.Logger
}
