package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"

	"github.com/Alijeyrad/sorriso_backend/config"
)

// NewLimiter applies a sliding-window limit per client IP. Counters live in
// redis when a client is available so every replica shares them; otherwise
// they stay in process memory.
func NewLimiter(cfg config.RateLimitConfig, rdb *redis.Client) fiber.Handler {
	max := cfg.RequestsPerMinute
	if max <= 0 {
		max = 300
	}

	lc := limiter.Config{
		Max:               max,
		Expiration:        time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Muitas requisições. Tente novamente em instantes.",
				"code":    "rate_limited",
			})
		},
	}
	if rdb != nil {
		lc.Storage = fiberredis.NewFromConnection(rdb)
	}

	return limiter.New(lc)
}
