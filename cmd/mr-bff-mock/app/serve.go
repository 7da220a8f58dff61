package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stacklok/model-registry-bff/internal/api"
	"github.com/stacklok/model-registry-bff/internal/config"
	"github.com/stacklok/model-registry-bff/internal/mocks"
	"github.com/stacklok/model-registry-bff/internal/service/inmemory"
	"github.com/stacklok/model-registry-bff/internal/telemetry"
	"github.com/stacklok/model-registry-bff/pkg/versions"
)

const (
	defaultGracefulTimeout = 30 * time.Second
	serverRequestTimeout   = 10 * time.Second
	serverReadTimeout      = 10 * time.Second
	serverWriteTimeout     = 15 * time.Second // Must be > serverRequestTimeout to let middleware handle timeout
	serverIdleTimeout      = 60 * time.Second
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the mock BFF server",
		Long: `Start the mock BFF server.

The optional configuration file (--config) lists the model registries to expose and
the fixture file to serve. The built-in fixture set is used when no fixture file is
given (--fixtures overrides the configuration file). With --watch the fixture file
is reloaded whenever it changes.`,
		RunE: runServe,
	}

	cmd.Flags().String("address", ":4000", "Address to listen on")
	cmd.Flags().String("config", "", "Path to configuration file (YAML format)")
	cmd.Flags().String("fixtures", "", "Path to a fixture file (YAML format)")
	cmd.Flags().Bool("watch", false, "Reload the fixture file when it changes")

	for _, name := range []string{"address", "config", "fixtures", "watch"} {
		if err := viper.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			slog.Error("Failed to bind flag", "flag", name, "error", err)
		}
	}

	return cmd
}

// loadConfig reads the configuration file when one is given and applies the
// fixture flags.
func loadConfig(configPath, fixturesPath string, watch bool) (*config.Config, error) {
	var opts []config.Option
	if configPath != "" {
		opts = append(opts, config.WithConfigPath(configPath))
	}

	cfg, err := config.LoadConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if fixturesPath != "" {
		cfg.Fixtures = &config.FixturesConfig{Path: fixturesPath}
	}
	if watch {
		if cfg.Fixtures == nil || cfg.Fixtures.Path == "" {
			return nil, fmt.Errorf("--watch requires a fixture file (--fixtures or fixtures.path)")
		}
		cfg.Fixtures.Watch = true
	}
	return cfg, nil
}

// newService builds the fixture backed service, instrumented with tel
func newService(cfg *config.Config, tel *telemetry.Telemetry) (*inmemory.Service, error) {
	fixtures, err := cfg.LoadFixtures()
	if err != nil {
		return nil, fmt.Errorf("failed to load fixtures: %w", err)
	}

	fixtureMetrics, err := telemetry.NewFixtureMetrics(tel.MeterProvider())
	if err != nil {
		return nil, fmt.Errorf("failed to create fixture metrics: %w", err)
	}

	svc, err := inmemory.New(cfg.GetRegistries(), fixtures,
		inmemory.WithTracerProvider(tel.TracerProvider()),
		inmemory.WithFixtureMetrics(fixtureMetrics),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create model registry service: %w", err)
	}
	return svc, nil
}

// newHandler builds the HTTP handler serving svc
func newHandler(svc *inmemory.Service, tel *telemetry.Telemetry) (http.Handler, error) {
	httpMetrics, err := telemetry.NewHTTPMetrics(tel.MeterProvider())
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP metrics: %w", err)
	}

	return api.NewServer(svc,
		api.WithMiddlewares(
			middleware.RequestID,
			middleware.RealIP,
			middleware.Recoverer,
			telemetry.TracingMiddleware(tel.TracerProvider()),
			httpMetrics.Middleware,
			middleware.Timeout(serverRequestTimeout),
			api.LoggingMiddleware,
		),
	), nil
}

func runServe(_ *cobra.Command, _ []string) error {
	address := viper.GetString("address")

	cfg, err := loadConfig(viper.GetString("config"), viper.GetString("fixtures"), viper.GetBool("watch"))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry != nil && cfg.Telemetry.ServiceVersion == "" {
		cfg.Telemetry.ServiceVersion = versions.GetVersionInfo().Version
	}
	tel, err := telemetry.New(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultGracefulTimeout)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to shutdown telemetry", "error", err)
		}
	}()

	svc, err := newService(cfg, tel)
	if err != nil {
		return err
	}

	handler, err := newHandler(svc, tel)
	if err != nil {
		return err
	}

	if cfg.WatchFixtures() {
		go func() {
			if err := mocks.WatchFixtures(ctx, cfg.Fixtures.Path, svc.SetFixtures); err != nil &&
				!errors.Is(err, context.Canceled) {
				slog.Error("Fixture watcher stopped", "error", err)
			}
		}()
	}

	server := &http.Server{
		Addr:         address,
		Handler:      handler,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "address", address, "registries", len(cfg.GetRegistries()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultGracefulTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		return err
	}

	slog.Info("Server shutdown complete")
	return nil
}
