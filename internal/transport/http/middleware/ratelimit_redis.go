package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"taskboard/internal/api"

	"github.com/gofiber/fiber/v2"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimiter is a fixed-window limiter keyed by route and client IP, backed by
// Redis INCR/EXPIRE. It fails open when Redis is absent or erroring.
type RateLimiter struct {
	client  *redis.Client
	max     int
	window  time.Duration
	metrics *Metrics
	log     *zap.SugaredLogger
}

// NewRedisClient connects to addr. It returns nil when addr is empty or the
// server does not answer a ping, which disables limiting.
func NewRedisClient(ctx context.Context, addr, password string, db int, log *zap.SugaredLogger) *redis.Client {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warnw("redis unavailable, rate limiting disabled", "addr", addr, "error", err)
		_ = client.Close()
		return nil
	}
	return client
}

// NewRateLimiter builds a limiter allowing max requests per window. client and metrics may be nil.
func NewRateLimiter(client *redis.Client, max int, window time.Duration, metrics *Metrics, log *zap.SugaredLogger) *RateLimiter {
	return &RateLimiter{client: client, max: max, window: window, metrics: metrics, log: log.Named("ratelimit")}
}

// Handler enforces the limit.
func (rl *RateLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rl.client == nil || rl.max <= 0 {
			return c.Next()
		}

		endpoint := c.Route().Path
		key := "rl:" + strconv.FormatInt(int64(rl.window.Seconds()), 10) + ":" + endpoint + ":" + c.IP()
		ctx := c.UserContext()

		val, err := rl.client.Incr(ctx, key).Result()
		if err != nil {
			rl.log.Warnw("rate limiter redis error", "error", err)
			c.Set("X-RateLimit-Error", "redis-error")
			return c.Next()
		}
		if val == 1 {
			if err := rl.client.Expire(ctx, key, rl.window).Err(); err != nil {
				// a counter without TTL would lock the client out for good
				rl.log.Warnw("rate limiter expire failed", "error", err, "key", key)
				if err := rl.client.Del(ctx, key).Err(); err != nil {
					rl.log.Errorw("rate limiter cleanup failed", "error", err, "key", key)
				}
				c.Set("X-RateLimit-Error", "redis-error")
				return c.Next()
			}
		}

		if val > int64(rl.max) {
			if rl.metrics != nil {
				rl.metrics.rlBlocked.WithLabelValues(endpoint).Inc()
			}
			return c.Status(http.StatusTooManyRequests).JSON(api.ErrorResponse{Error: "rate limit exceeded"})
		}

		if rl.metrics != nil {
			rl.metrics.rlAllowed.WithLabelValues(endpoint).Inc()
		}
		return c.Next()
	}
}
