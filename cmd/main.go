// Package main wires the HTTP server for the CLA label webhook service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/brettcannon/the-knights-who-say-ni/internal/transport/http/server/handlers-fiber"
	"github.com/brettcannon/the-knights-who-say-ni/internal/usecase"

	"github.com/brettcannon/the-knights-who-say-ni/config"
	"github.com/brettcannon/the-knights-who-say-ni/internal/clarecords"
	"github.com/brettcannon/the-knights-who-say-ni/internal/github"
	"github.com/brettcannon/the-knights-who-say-ni/internal/transport/http/middleware"
	"github.com/brettcannon/the-knights-who-say-ni/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
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

	records, err := clarecords.New(ctx, cfg.CLARecords.Backend, log, cfg)
	if err != nil {
		log.Errorw("records initialization error", "error", err)
		return
	}
	if err := records.OnStart(ctx); err != nil {
		log.Errorw("records start error", "error", err)
		return
	}
	defer func() {
		_ = records.OnStop(context.Background())
	}()

	gh := github.New(log, cfg.GitHub)

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, ctx, gh, records, timeout)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc)
	serv.Post("/github", h.PostGithubWebhook)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
