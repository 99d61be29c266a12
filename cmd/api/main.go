package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/qrmenu/docs/swagger"
	"github.com/ghuser/qrmenu/pkg/app"
	"github.com/ghuser/qrmenu/pkg/cache"
	"github.com/ghuser/qrmenu/pkg/config"
	"github.com/ghuser/qrmenu/pkg/httpx"
	"github.com/ghuser/qrmenu/pkg/kv"
	"github.com/ghuser/qrmenu/pkg/logger"
	"github.com/ghuser/qrmenu/pkg/qrcode"
	"github.com/ghuser/qrmenu/pkg/session"
	"github.com/ghuser/qrmenu/pkg/telemetry"
	menuApi "github.com/ghuser/qrmenu/services/menu/application/api"
)

// @title					QR Menu API
// @version				1.0
// @description			Menu editor and QR code viewer for restaurants.
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/
// @schemes				http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional; log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	store, health, closeStore, err := openStore(cfg, log)
	if err != nil {
		log.Error("failed to open menu store", "error", err, "backend", cfg.StoreBackend)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer closeStore() //nolint:errcheck

	sessionStore := session.NewStore(
		store,
		[]byte(cfg.SessionAuthKey),
		[]byte(cfg.SessionEncryptionKey),
		cfg.Environment == config.EnvProduction,
	)
	log.Info("session store initialized", "backend", cfg.StoreBackend)

	encoder, err := qrcode.NewEncoder(qrcode.Options{Size: cfg.QRSize})
	if err != nil {
		log.Error("invalid qr code settings", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	node, err := snowflake.NewNode(cfg.SnowflakeNode)
	if err != nil {
		log.Error("invalid snowflake node", "error", err, "node", cfg.SnowflakeNode)
		os.Exit(1) //nolint:gocritic
	}

	appConfig := &app.Application{
		Config:       cfg,
		Logger:       log,
		Store:        store,
		SessionStore: sessionStore,
		Encoder:      encoder,
		IDNode:       node,
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		Store:   health,
		Backend: cfg.StoreBackend,
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(api chi.Router) {
		registerRoutes(api, r, appConfig)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "public_origin", cfg.PublicOrigin)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// openStore connects the configured menu store backend.
func openStore(cfg *config.Config, log logger.Logger) (kv.Store, httpx.HealthChecker, func() error, error) {
	if cfg.StoreBackend == config.StoreMemory {
		log.Warn("using in-process menu store; menus are lost on restart")
		mem := kv.NewMemoryStore()
		return mem, mem, func() error { return nil }, nil
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	log.Info("redis connected")
	return redisClient, redisClient, redisClient.Close, nil
}

// registerRoutes mounts all service routes: editor endpoints under /api and
// public pages on root. Add each new service's route function here.
func registerRoutes(api chi.Router, root chi.Router, a *app.Application) {
	menuApi.MenuRoutes(api, root, a)
}
