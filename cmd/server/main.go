package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/EpicMandM/laptop-desk/internal/app"
	"github.com/EpicMandM/laptop-desk/internal/config"
	"github.com/EpicMandM/laptop-desk/internal/logger"
)

func main() {
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log); err != nil {
		log.Error("Application error", logger.Error(err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {
	envPath := getEnvOrDefault("ENV_FILE", ".env")
	cfg, err := config.LoadWithFile(envPath)
	if err != nil {
		log.Error("Failed to load config", logger.Error(err), logger.F("path", envPath))
		return err
	}

	ui, err := config.LoadUIConfig(cfg.UIConfigPath)
	if err != nil {
		log.Error("Failed to load UI config", logger.Error(err), logger.F("path", cfg.UIConfigPath))
		return err
	}

	application := app.New(cfg, ui, log)
	if err := application.Initialize(); err != nil {
		return err
	}

	log.Info("Starting laptop desk",
		logger.Action("startup"),
		logger.F("LISTEN_ADDR", cfg.ListenAddr),
		logger.F("API_BASE_URL", cfg.APIBaseURL))

	return application.Run(ctx)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
