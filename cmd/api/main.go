package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"appraisalapi/docs"
	"appraisalapi/internal/config"
	handlers "appraisalapi/internal/http/handler"
	"appraisalapi/internal/http/middleware"
	"appraisalapi/internal/logging"
	apiotel "appraisalapi/internal/otel"
	"appraisalapi/internal/service"
	"appraisalapi/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// @title Faculty Appraisal API
// @version 1.0
// @BasePath /
func main() {
	logging.Configure()

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg, err := config.Load()
	if err != nil {
		logger := logging.New(os.Stderr, "info", time.UTC)
		logger.Fatal().Err(err).Msg("config_load_failed")
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.Location())
	logging.UseAsStandardLoggerOutput(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server_failed")
	}
}

func run(ctx context.Context, cfg *config.AppConfig, logger zerolog.Logger) error {
	shutdownTracing, err := apiotel.Init(ctx, logging.Component(logger, "otel"))
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn().Err(err).Msg("tracing_shutdown_failed")
		}
	}()

	backend, err := openDocstore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer backend.close()

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		return err
	}

	filterMode, _ := service.ParseFilterMode(cfg.Appraisal.FilterMode)
	opts := []service.Option{
		service.WithLogger(logging.Component(logger, "service")),
		service.WithSignedURLExpiry(cfg.Appraisal.SignedURLExpiry),
		service.WithFilterMode(filterMode),
	}
	profileSvc := service.NewProfileService(backend.faculty, opts...)
	appraisalSvc := service.NewAppraisalService(objStore, backend.appraisals, opts...)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		Immutable:             true,
		BodyLimit:             cfg.MaxUploadBytes,
		DisableStartupMessage: true,
	})

	// Register global middleware
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and a request-scoped logger
	app.Use(middleware.RequestID(logger))
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger(logging.Component(logger, "http")))
	app.Use(metrics.Handler())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSAllowOrigins}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, handlers.Dependencies{
		Profiles:   profileSvc,
		Appraisals: appraisalSvc,
		Checks: []handlers.Check{
			{Name: "docstore", Ping: backend.ping},
			{Name: "objectstore", Ping: objStore.Ping},
		},
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	app.Static("/", cfg.StaticDir)

	go func() {
		<-ctx.Done()
		logger.Info().Msg("shutdown_requested")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			logger.Error().Err(err).Msg("shutdown_failed")
		}
	}()

	addr := ":" + cfg.Port
	logger.Info().
		Str("addr", addr).
		Str("docstore", cfg.DocstoreBackend).
		Str("filter_mode", string(filterMode)).
		Msg("server_starting")

	return app.Listen(addr)
}
