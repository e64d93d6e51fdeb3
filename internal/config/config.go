package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	SessionBackendRedis  = "redis"
	SessionBackendMemory = "memory"
)

type Config struct {
	// Telegram
	TelegramToken string

	// Session state
	SessionBackend string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	GridTTL        time.Duration

	// randomuser.me API
	RandomUserBaseURL string
	RandomUserTimeout time.Duration

	// Health endpoints
	HTTPAddr string

	// Logging
	LogLevel string
}

func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		SessionBackend:    SessionBackendRedis,
		RedisAddr:         "localhost:6379",
		GridTTL:           30 * time.Minute,
		RandomUserBaseURL: "https://api.randomuser.me",
		RandomUserTimeout: 15 * time.Second,
		HTTPAddr:          ":8080",
		LogLevel:          "info",
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required")
	}

	if backend := os.Getenv("SESSION_BACKEND"); backend != "" {
		cfg.SessionBackend = backend
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.RedisAddr = addr
	}

	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		db, err := strconv.Atoi(redisDB)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.RedisDB = db
	}

	if ttl := os.Getenv("GRID_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid GRID_TTL: %w", err)
		}
		cfg.GridTTL = d
	}

	if baseURL := os.Getenv("RANDOMUSER_BASE_URL"); baseURL != "" {
		cfg.RandomUserBaseURL = baseURL
	}

	if timeout := os.Getenv("RANDOMUSER_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid RANDOMUSER_TIMEOUT: %w", err)
		}
		cfg.RandomUserTimeout = d
	}

	if addr := os.Getenv("HTTP_ADDR"); addr != "" {
		cfg.HTTPAddr = addr
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("telegram token is empty")
	}

	switch c.SessionBackend {
	case SessionBackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("redis address is empty")
		}
	case SessionBackendMemory:
	default:
		return fmt.Errorf("invalid session backend: %s", c.SessionBackend)
	}

	if c.GridTTL < time.Minute {
		return fmt.Errorf("grid TTL too small: %v", c.GridTTL)
	}

	if c.RandomUserTimeout <= 0 {
		return fmt.Errorf("randomuser timeout must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}
