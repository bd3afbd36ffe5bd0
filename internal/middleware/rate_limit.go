package middleware

import (
	"time"

	"trivia-api/internal/config"
	"trivia-api/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"go.uber.org/zap"
)

// RateLimiter limits requests per client IP. A nil storage keeps counters in
// memory; cfg.Max <= 0 disables limiting.
func RateLimiter(cfg config.RateLimitConfig, storage fiber.Storage) fiber.Handler {
	if cfg.Max <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	window := cfg.Window
	if window <= 0 {
		window = time.Minute
	}

	return limiter.New(limiter.Config{
		Max:        cfg.Max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			logger.Get().Warn("Rate limit exceeded",
				zap.String("ip", c.IP()),
				zap.String("path", c.Path()))
			return fiber.ErrTooManyRequests
		},
		Storage: storage,
	})
}
