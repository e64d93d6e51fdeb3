package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"randomuser-bot/internal/api/randomuser"
	"randomuser-bot/internal/bot"
	"randomuser-bot/internal/bot/handlers"
	"randomuser-bot/internal/bot/middleware"
	"randomuser-bot/internal/config"
	"randomuser-bot/internal/grid"
	"randomuser-bot/internal/httpserver"
	"randomuser-bot/internal/logger"
	"randomuser-bot/internal/session"
	"randomuser-bot/internal/storage/redis"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting random user bot",
		zap.String("log_level", cfg.LogLevel),
		zap.String("session_backend", cfg.SessionBackend),
		zap.Duration("grid_ttl", cfg.GridTTL),
	)

	var (
		store   session.Store
		limiter middleware.RateCounter
		pinger  httpserver.Pinger
	)

	switch cfg.SessionBackend {
	case config.SessionBackendRedis:
		log.Info("connecting to Redis...")
		cache, err := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, log)
		if err != nil {
			log.Fatal("failed to connect to Redis", zap.Error(err))
		}
		defer cache.Close()

		log.Info("Redis connected successfully")
		store, limiter, pinger = cache, cache, cache
	default:
		log.Warn("grids are kept in memory and rate limiting is off")
		store = session.NewMemoryStore()
	}

	sessions := session.NewManager(store, cfg.GridTTL, log)

	ruClient := randomuser.New(cfg.RandomUserBaseURL, cfg.RandomUserTimeout, log)
	loader := grid.NewLoader(ruClient, log)
	log.Info("randomuser API client created", zap.String("base_url", cfg.RandomUserBaseURL))

	log.Info("initializing Telegram bot...")
	tgBot, err := bot.New(cfg, sessions, loader, handlers.SendUserCard, limiter, log)
	if err != nil {
		log.Fatal("failed to create bot", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Info("received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	health := httpserver.New(cfg.HTTPAddr, pinger, log)
	go func() {
		if err := health.Run(ctx); err != nil {
			log.Error("HTTP server stopped with error", zap.Error(err))
		}
	}()

	log.Info("bot is running...")
	log.Info("press Ctrl+C to stop")

	if err := tgBot.Start(ctx); err != nil {
		log.Error("bot stopped with error", zap.Error(err))
	}

	log.Info("bot stopped")
}
