package middleware

import (
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/config"
	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/storage/redis/v3"
)

// RateLimitStorage returns Redis-backed limiter storage when REDIS_URL is set,
// so instances share counters. Nil means Fiber's in-memory store.
func RateLimitStorage(cfg *config.Config) fiber.Storage {
	if cfg.RedisURL == "" {
		return nil
	}
	slog.Info("rate limiter using redis storage")
	return redis.New(redis.Config{
		URL: cfg.RedisURL,
	})
}

// RateLimit allows RATE_LIMIT_MAX requests per IP per RATE_LIMIT_WINDOW.
func RateLimit(cfg *config.Config, storage fiber.Storage) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               cfg.RateLimitMax,
		Expiration:        cfg.RateLimitWindow,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
		Storage:           storage,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Error: "Too many requests",
			})
		},
	})
}
