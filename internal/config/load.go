package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load,
// e.g. ENDORSA_SERVER_PORT or ENDORSA_AUTH_JWT_SECRET.
const EnvPrefix = "ENDORSA"

// legacyDatabaseURLEnv is consulted when ENDORSA_DATABASE_URL is unset.
const legacyDatabaseURLEnv = "DATABASE_URL"

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	// A missing .env file is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only applies to keys viper already knows about, so every
	// key without a default needs an explicit binding.
	for _, key := range []string{
		"database.url",
		"auth.jwt_secret",
		"auth.public_key",
		"auth.private_key",
		"auth.issuer",
		"auth.audience",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Database.URL == "" {
		cfg.Database.URL = os.Getenv(legacyDatabaseURLEnv)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// minSecretLength is the shortest HS256 secret accepted.
const minSecretLength = 32

// Validate runs the struct validation rules on cfg.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if cfg.Auth.JWTSecret != "" && len(cfg.Auth.JWTSecret) < minSecretLength {
		return fmt.Errorf(
			"config validation failed: auth.jwt_secret must be at least %d characters",
			minSecretLength,
		)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime_minutes", 5)
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("auth.algorithm", "HS256")
	v.SetDefault("auth.token_lifetime_minutes", 60)
	v.SetDefault("auth.clock_skew_seconds", 120)
}
