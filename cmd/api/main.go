package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"xerosync/docs"
	"xerosync/internal/config"
	"xerosync/internal/database"
	"xerosync/internal/database/migration"
	"xerosync/internal/gateway"
	handlers "xerosync/internal/http/handler"
	"xerosync/internal/http/middleware"
	"xerosync/internal/logger"
	"xerosync/internal/otel"
	"xerosync/internal/repository/postgres"
	"xerosync/internal/service"
	"xerosync/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// @title Xero Journal Sync API
// @version 1.0
// @description Local snapshots of Xero journals and an archive of document attachments.
// @BasePath /
func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.AppConfig, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing shutdown", zap.Error(err))
		}
	}()

	db, err := database.NewPostgres(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log); err != nil {
		return err
	}

	objStore, err := storage.NewMinIO(ctx, cfg.MinIO, log)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	xeroMetrics, err := gateway.NewMetrics(reg)
	if err != nil {
		return err
	}
	xero, err := gateway.New(cfg.Xero, gateway.WithLogger(log), gateway.WithMetrics(xeroMetrics))
	if err != nil {
		return err
	}

	journalRepo := postgres.NewJournalPostgres(db)
	journalSvc := service.NewJournalService(xero, journalRepo, log)
	attachmentSvc := service.NewAttachmentService(xero, objStore, cfg.MinIO.LinkExpiry, log)

	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(httpMetrics.Handler())

	handlers.RegisterRoutes(app, handlers.Dependencies{
		DB:          db,
		Gatherer:    reg,
		Journals:    journalSvc,
		Attachments: attachmentSvc,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", addr))
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
