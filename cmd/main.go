// Package main wires the HTTP server for the task board service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"taskboard/config"
	"taskboard/internal/auth"
	"taskboard/internal/repository"
	"taskboard/internal/transport/http/middleware"
	"taskboard/internal/transport/http/server/handlers-fiber"
	"taskboard/internal/usecase"
	"taskboard/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	repo, err := repository.New(ctx, cfg.Repository.Backend, log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	uc := usecase.New(log, repo, cfg.HTTP.RequestTimeout)
	tokens := auth.NewTokens(cfg.JWT.Secret, cfg.JWT.TTL)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(reg)

	rdb := middleware.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}
	limiter := middleware.NewRateLimiter(rdb, cfg.RateLimit.AuthRequests, cfg.RateLimit.AuthWindow, metrics, log)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
		ErrorHandler: handlers_fiber.ErrorHandler(log),
	})
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))
	serv.Use(recover.New())
	serv.Use(metrics.Handler())

	h := handlers_fiber.NewHandler(log, uc, tokens)

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	serv.Get("/readyz", h.GetReady)
	serv.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers_fiber.RegisterHandlers(serv.Group("/api"), h, handlers_fiber.Middlewares{
		Auth:      middleware.BearerAuth(tokens, log),
		RateLimit: limiter.Handler(),
	})

	go func() {
		log.Infow("listening", "addr", cfg.ServerAddr(), "backend", cfg.Repository.Backend)
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := serv.ShutdownWithContext(shutdownCtx); err != nil {
		log.Warnw("server shutdown", "error", err, "timeout", cfg.Server.ShutdownTimeout)
	}
}
