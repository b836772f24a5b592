package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRateLimiterFailsOpenWithoutRedis(t *testing.T) {
	rl := NewRateLimiter(nil, 1, time.Minute, nil, zap.NewNop().Sugar())

	app := fiber.New()
	app.Get("/test", rl.Handler(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
}

// expireFails answers INCR and DEL locally and fails every EXPIRE.
type expireFails struct {
	deleted []string
}

func (h *expireFails) DialHook(next redis.DialHook) redis.DialHook { return next }

func (h *expireFails) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		switch cmd.Name() {
		case "incr":
			cmd.(*redis.IntCmd).SetVal(1)
			return nil
		case "expire":
			return errors.New("expire unavailable")
		case "del":
			h.deleted = append(h.deleted, cmd.Args()[1].(string))
			cmd.(*redis.IntCmd).SetVal(1)
			return nil
		}
		return next(ctx, cmd)
	}
}

func (h *expireFails) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func TestRateLimiterDropsKeyWhenExpireFails(t *testing.T) {
	hook := &expireFails{}
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	client.AddHook(hook)
	t.Cleanup(func() { _ = client.Close() })

	rl := NewRateLimiter(client, 1, time.Minute, nil, zap.NewNop().Sugar())
	app := fiber.New()
	app.Post("/api/login", rl.Handler(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/login", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "redis-error", resp.Header.Get("X-RateLimit-Error"))
	require.Len(t, hook.deleted, 1)
	require.Contains(t, hook.deleted[0], "/api/login")
}

func TestNewRedisClientDisabledWithoutAddr(t *testing.T) {
	require.Nil(t, NewRedisClient(context.Background(), "", "", 0, zap.NewNop().Sugar()))
}

// Integration-style test: runs only if REDIS_ADDR env is set.
func TestRedisRateLimitIntegration(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set; skipping integration test")
	}
	db := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			db = n
		}
	}

	log := zap.NewNop().Sugar()
	client := NewRedisClient(context.Background(), addr, os.Getenv("REDIS_PASSWORD"), db, log)
	require.NotNil(t, client)
	t.Cleanup(func() { _ = client.Close() })

	metrics := NewMetrics(prometheus.NewRegistry())
	max := 2
	// unique route per run so leftovers from earlier runs do not count
	route := "/test-" + strconv.FormatInt(time.Now().UnixNano(), 10)
	rl := NewRateLimiter(client, max, 2*time.Second, metrics, log)

	app := fiber.New()
	app.Get(route, rl.Handler(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	for i := 0; i < max; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, route, nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, route, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	require.Equal(t, float64(1), testutil.ToFloat64(metrics.rlBlocked.WithLabelValues(route)))
}
