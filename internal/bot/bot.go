package bot

import (
	"context"
	"fmt"
	"time"

	"randomuser-bot/internal/bot/handlers"
	"randomuser-bot/internal/bot/middleware"
	"randomuser-bot/internal/config"
	"randomuser-bot/internal/grid"
	"randomuser-bot/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Bot represents Telegram bot
type Bot struct {
	bot      *tele.Bot
	sessions *session.Manager
	loader   *grid.Loader
	onSelect handlers.SelectHandler
	limiter  middleware.RateCounter
	config   *config.Config
	logger   *zap.Logger
}

// New creates the bot. limiter may be nil to disable rate limiting.
func New(
	cfg *config.Config,
	sessions *session.Manager,
	loader *grid.Loader,
	onSelect handlers.SelectHandler,
	limiter middleware.RateCounter,
	logger *zap.Logger,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.TelegramToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			logger.Error("telebot error", zap.Error(err))
		},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	bot := &Bot{
		bot:      b,
		sessions: sessions,
		loader:   loader,
		onSelect: onSelect,
		limiter:  limiter,
		config:   cfg,
		logger:   logger,
	}

	bot.setupMiddleware()

	bot.registerHandlers()

	logger.Info("bot initialized successfully")

	return bot, nil
}

func (b *Bot) setupMiddleware() {
	b.bot.Use(middleware.Recovery(b.logger))

	b.bot.Use(middleware.Logger(b.logger))

	if b.limiter != nil {
		b.bot.Use(middleware.RateLimit(b.limiter, b.logger))
	}
}

func (b *Bot) registerHandlers() {
	ctx := &handlers.Context{
		Sessions: b.sessions,
		Loader:   b.loader,
		OnSelect: b.onSelect,
		Config:   b.config,
		Logger:   b.logger,
	}

	b.bot.Handle("/start", handlers.HandleStart(ctx))
	b.bot.Handle("/grid", handlers.HandleGrid(ctx))
	b.bot.Handle("/help", handlers.HandleHelp(ctx))

	b.bot.Handle(tele.OnText, handlers.HandleText(ctx))

	b.bot.Handle(tele.OnCallback, handlers.HandleCallback(ctx))

	b.logger.Info("handlers registered")
}

func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("starting bot...")

	go b.bot.Start()

	<-ctx.Done()

	b.logger.Info("stopping bot...")
	b.bot.Stop()

	return nil
}
