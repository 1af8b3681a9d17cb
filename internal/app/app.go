package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/EpicMandM/laptop-desk/internal/config"
	"github.com/EpicMandM/laptop-desk/internal/handler"
	"github.com/EpicMandM/laptop-desk/internal/logger"
	"github.com/EpicMandM/laptop-desk/internal/service"
	"github.com/EpicMandM/laptop-desk/internal/views"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

type App struct {
	config *config.Config
	ui     *config.UIConfig
	logger *logger.Logger
	server *http.Server
}

func New(cfg *config.Config, ui *config.UIConfig, log *logger.Logger) *App {
	if log == nil {
		log = logger.Discard()
	}
	if ui == nil {
		ui = config.DefaultUIConfig()
	}
	return &App{
		config: cfg,
		ui:     ui,
		logger: log,
	}
}

// Initialize builds the backend client and the page server.
func (a *App) Initialize() error {
	client, err := service.NewClient(a.config.APIBaseURL,
		service.WithLaptopsPath(a.config.LaptopsPath),
		service.WithLogger(a.logger))
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	pages, err := handler.NewPageHandler(views.New(client, a.logger), a.ui, a.logger)
	if err != nil {
		return fmt.Errorf("failed to load pages: %w", err)
	}

	a.server = &http.Server{
		Addr:         a.config.ListenAddr,
		Handler:      handler.NewRouter(pages, a.logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	a.logger.Info("App initialized", logger.Status("ready"), logger.F("API_BASE_URL", a.config.APIBaseURL))
	return nil
}

// Handler returns the page router.
func (a *App) Handler() (http.Handler, error) {
	if a.server == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a.server.Handler, nil
}

// Run listens on the configured address and serves until ctx is done.
func (a *App) Run(ctx context.Context) error {
	if a.server == nil {
		return fmt.Errorf("app not initialized")
	}
	ln, err := net.Listen("tcp", a.config.ListenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.config.ListenAddr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	if a.server == nil {
		return fmt.Errorf("app not initialized")
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("Server starting", logger.Action("serve"), logger.F("ADDR", ln.Addr().String()))
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		a.logger.Info("Shutting down", logger.Action("serve"), logger.Status("stopping"))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	a.logger.Info("Shutdown complete", logger.Action("serve"), logger.Status("stopped"))
	return nil
}
