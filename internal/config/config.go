package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL                    string `mapstructure:"url"                       validate:"required"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"            validate:"gt=0"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"            validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gt=0"`
	// AutoMigrate applies pending goose migrations when the server starts.
	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// AuthConfig contains token verification settings.
//
// HS256 verifies and signs with JWTSecret. RS256 verifies with the PEM
// encoded PublicKey and can only mint tokens when PrivateKey is set.
type AuthConfig struct {
	Algorithm            string `mapstructure:"algorithm"              validate:"required,oneof=HS256 RS256"`
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required_if=Algorithm HS256"`
	PublicKey            string `mapstructure:"public_key"             validate:"required_if=Algorithm RS256"`
	PrivateKey           string `mapstructure:"private_key"`
	Issuer               string `mapstructure:"issuer"`
	Audience             string `mapstructure:"audience"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"gt=0"`
	ClockSkewSeconds     int    `mapstructure:"clock_skew_seconds"     validate:"gte=0"`
}
