package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/phone-resale/internal/api/handlers"
	mw "github.com/donaldgifford/phone-resale/internal/api/middleware"
	"github.com/donaldgifford/phone-resale/internal/config"
	"github.com/donaldgifford/phone-resale/internal/engine"
	"github.com/donaldgifford/phone-resale/internal/store"
	"github.com/donaldgifford/phone-resale/internal/telemetry"
	"github.com/donaldgifford/phone-resale/internal/web"
	"github.com/donaldgifford/phone-resale/pkg/logger"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web UI, API server and scheduler",
		RunE:  runServe,
	}
}

func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Version: Version,
	})

	tel, err := telemetry.Setup(context.Background(), &cfg.Telemetry, Version)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	if cfg.Telemetry.Enabled {
		log.Info("exporting telemetry", "endpoint", cfg.Telemetry.Endpoint)
	}

	s := store.NewMemoryStore(store.NewIDAllocator())
	eng := engine.NewEngine(s,
		engine.WithLogger(log),
		engine.WithMaxImportBytes(cfg.Import.MaxBytes),
		engine.WithTracerProvider(tel.TracerProvider),
		engine.WithMeterProvider(tel.MeterProvider),
	)

	e := newServer(&cfg.Server, s, eng, tel.TracerProvider, log)

	sched, err := engine.NewScheduler(eng, cfg.Schedule.InventoryInterval, log)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.Start()

	addr := cfg.Server.Addr()
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	<-sched.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	if err := tel.Shutdown(ctx); err != nil {
		log.Warn("flushing telemetry", "error", err)
	}

	log.Info("server stopped")
	return nil
}

// newServer wires the middleware, probes, metrics, JSON API and web UI onto
// a fresh echo instance.
func newServer(
	cfg *config.ServerConfig,
	s store.Store,
	eng *engine.Engine,
	tp trace.TracerProvider,
	log *slog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	e.Use(mw.RequestLog(log))
	e.Use(mw.Tracing(tp))
	e.Use(mw.Recovery(log))
	e.Use(mw.Metrics())
	e.Use(mw.WriteRateLimit(cfg.WriteRateLimit, cfg.WriteBurst))

	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(s))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("phone-resale", Version))
	handlers.RegisterPhoneRoutes(api, handlers.NewPhonesHandler(s, log))
	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(eng))
	handlers.RegisterImportRoutes(e, handlers.NewImportHandler(eng))

	web.RegisterRoutes(e, web.NewHandler(s, eng, log))

	return e
}
