package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"ventascli/internal/config"
	"ventascli/internal/infrastructure"
	"ventascli/internal/services"
	transporthttp "ventascli/internal/transport/http"
)

const AppName = "ventas-analyzer"

// Version is set at build time via -ldflags.
var (
	Version   = "dev"
	BuildTime = ""
)

// Application wires configuration, services and the HTTP server.
type Application struct {
	Config          *config.Config
	Paths           *config.Paths
	Logger          *slog.Logger
	Registry        *prometheus.Registry
	AnalysisService *services.AnalysisService
	HealthService   *services.HealthService
	Router          *chi.Mux
	Server          *http.Server
}

// NewApplication builds a fully wired application.
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	paths, err := config.ResolvePaths(cfg.Paths)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve paths: %w", err)
	}
	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	app := &Application{
		Config:   cfg,
		Paths:    paths,
		Logger:   logger,
		Registry: prometheus.NewRegistry(),
	}

	app.initializeServices()
	app.setupRouter()
	app.createServer()

	return app, nil
}

func (a *Application) initializeServices() {
	a.AnalysisService = services.NewAnalysisService(a.Config, a.Paths, a.Logger)
	a.HealthService = services.NewHealthService(Version, BuildTime, a.Logger)
}

func (a *Application) setupRouter() {
	a.Router = transporthttp.NewRouter(transporthttp.RouterDeps{
		Config:          a.Config,
		Paths:           a.Paths,
		Logger:          a.Logger,
		AnalysisService: a.AnalysisService,
		HealthService:   a.HealthService,
		Registry:        a.Registry,
	})
}

func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:      a.Router,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}
}

// Start launches the HTTP server. Listen errors cancel the supplied
// context instead of exiting the process.
func (a *Application) Start(ctx context.Context, cancel context.CancelFunc) error {
	a.Logger.InfoContext(ctx, "starting application",
		slog.String("name", AppName),
		slog.String("version", Version),
		slog.Int("port", a.Config.Server.Port),
		slog.String("level", a.Config.Logging.Level))

	a.Logger.InfoContext(ctx, "application paths",
		slog.String("input_dir", a.Paths.InputDir),
		slog.String("output_dir", a.Paths.OutputDir),
		slog.String("logs_dir", a.Paths.LogsDir))

	go func() {
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.Logger.ErrorContext(ctx, "server error", slog.String("error", err.Error()))
			cancel()
		}
	}()

	a.Logger.InfoContext(ctx, "application started",
		slog.String("address", fmt.Sprintf("http://localhost:%d", a.Config.Server.Port)))

	return nil
}

// Stop gracefully stops the HTTP server.
func (a *Application) Stop(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "shutting down application")

	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	a.Logger.InfoContext(ctx, "application shutdown complete")
	return nil
}

// Run runs the application until interrupted.
func (a *Application) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if err := a.Start(ctx, cancel); err != nil {
		return err
	}

	select {
	case <-sigChan:
		a.Logger.InfoContext(ctx, "received interrupt signal")
	case <-ctx.Done():
	}

	return a.Stop(context.Background())
}
