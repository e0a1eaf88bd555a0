package main

import (
	"fmt"
	"log/slog"

	"github.com/endorsa/endorsa-api/internal/config"
)

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"auth_algorithm", cfg.Auth.Algorithm)

	return cfg, nil
}
