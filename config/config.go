// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"net/url"

	"github.com/ironnest/ironnest-backend/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// TransportMode selects which record transport serves the public API.
type TransportMode string

const (
	// TransportAuto picks remote when a remote base URL is configured,
	// local otherwise.
	TransportAuto TransportMode = "auto"
	// TransportRemote uses the remote functions endpoint with local
	// read fallback.
	TransportRemote TransportMode = "remote"
	// TransportLocal serves everything from the local store.
	TransportLocal TransportMode = "local"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT"`
	Port           string      `mapstructure:"PORT"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS"`
	Version        string      `mapstructure:"VERSION"`
}

// DatabaseConfig holds PostgreSQL connection details. An empty Host means no
// relational backing is configured and the jsonfile store is used instead.
type DatabaseConfig struct {
	Host         string `mapstructure:"HOST"`
	Port         int    `mapstructure:"PORT"`
	User         string `mapstructure:"USER"`
	Password     string `mapstructure:"PASSWORD"`
	Name         string `mapstructure:"NAME"`
	SSLMode      string `mapstructure:"SSL_MODE"`
	MaxOpenConns int    `mapstructure:"MAX_OPEN_CONNS"`
}

// Configured reports whether a database host has been provided.
func (c *DatabaseConfig) Configured() bool {
	return c.Host != ""
}

// URL returns a postgres:// connection URL suitable for pgx and
// golang-migrate.
func (c *DatabaseConfig) URL() string {
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.User),
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		c.Name,
		sslmode,
	)
}

// EmailConfig holds configuration for the transactional email provider.
// An empty ResendAPIKey degrades sending to a reported failure, not a crash.
type EmailConfig struct {
	FromAddress    string `mapstructure:"FROM_ADDRESS"`
	FromName       string `mapstructure:"FROM_NAME"`
	BusinessEmail  string `mapstructure:"BUSINESS_EMAIL"`
	ResendAPIKey   string `mapstructure:"RESEND_API_KEY"`
	TimeoutSeconds int    `mapstructure:"TIMEOUT_SECONDS"`
}

// AdminConfig holds the prototype admin credential pair. This is a
// placeholder check, not a security boundary.
type AdminConfig struct {
	Username string `mapstructure:"USERNAME"`
	Password string `mapstructure:"PASSWORD"`
}

// TransportConfig selects and parameterizes the record transport.
type TransportConfig struct {
	Mode           TransportMode `mapstructure:"MODE"`
	RemoteBaseURL  string        `mapstructure:"REMOTE_BASE_URL"`
	TimeoutSeconds int           `mapstructure:"TIMEOUT_SECONDS"`
	DataFile       string        `mapstructure:"DATA_FILE"`
}

// Config aggregates all application configuration sections.
type Config struct {
	Server    ServerConfig    `mapstructure:"SERVER"`
	Database  DatabaseConfig  `mapstructure:"DATABASE"`
	Email     EmailConfig     `mapstructure:"EMAIL"`
	Admin     AdminConfig     `mapstructure:"ADMIN"`
	Transport TransportConfig `mapstructure:"TRANSPORT"`
}

// IsProduction returns true when running in the production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

// LoadConfig loads configuration from environment variables using Viper,
// applies defaults, unmarshals and validates it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.VERSION", "1.0.0")
	v.SetDefault("DATABASE.HOST", "")
	v.SetDefault("DATABASE.PORT", 5432)
	v.SetDefault("DATABASE.USER", "postgres")
	v.SetDefault("DATABASE.PASSWORD", "")
	v.SetDefault("DATABASE.NAME", "ironnest")
	v.SetDefault("DATABASE.SSL_MODE", "disable")
	v.SetDefault("DATABASE.MAX_OPEN_CONNS", 5)
	v.SetDefault("EMAIL.FROM_ADDRESS", "noreply@ironnest.co.za")
	v.SetDefault("EMAIL.FROM_NAME", "IronNest Installations")
	v.SetDefault("EMAIL.BUSINESS_EMAIL", "terblanche@ironnest.co.za")
	v.SetDefault("EMAIL.TIMEOUT_SECONDS", 10)
	v.SetDefault("ADMIN.USERNAME", "Admin")
	v.SetDefault("ADMIN.PASSWORD", "IronNest2025")
	v.SetDefault("TRANSPORT.MODE", TransportAuto)
	v.SetDefault("TRANSPORT.REMOTE_BASE_URL", "")
	v.SetDefault("TRANSPORT.TIMEOUT_SECONDS", 10)
	v.SetDefault("TRANSPORT.DATA_FILE", "ironnest_data.json")
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()

	envBindings := [][2]string{
		{"SERVER.ENVIRONMENT", "ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.VERSION", "VERSION"},
		{"DATABASE.HOST", "DB_HOST"},
		{"DATABASE.PORT", "DB_PORT"},
		{"DATABASE.USER", "DB_USER"},
		{"DATABASE.PASSWORD", "DB_PASSWORD"},
		{"DATABASE.NAME", "DB_NAME"},
		{"DATABASE.SSL_MODE", "DB_SSL_MODE"},
		{"DATABASE.MAX_OPEN_CONNS", "DB_MAX_OPEN_CONNS"},
		{"EMAIL.FROM_ADDRESS", "EMAIL_FROM_ADDRESS"},
		{"EMAIL.FROM_NAME", "EMAIL_FROM_NAME"},
		{"EMAIL.BUSINESS_EMAIL", "BUSINESS_EMAIL"},
		{"EMAIL.RESEND_API_KEY", "RESEND_API_KEY"},
		{"EMAIL.TIMEOUT_SECONDS", "EMAIL_TIMEOUT_SECONDS"},
		{"ADMIN.USERNAME", "ADMIN_USERNAME"},
		{"ADMIN.PASSWORD", "ADMIN_PASSWORD"},
		{"TRANSPORT.MODE", "TRANSPORT_MODE"},
		{"TRANSPORT.REMOTE_BASE_URL", "REMOTE_BASE_URL"},
		{"TRANSPORT.TIMEOUT_SECONDS", "TRANSPORT_TIMEOUT_SECONDS"},
		{"TRANSPORT.DATA_FILE", "DATA_FILE"},
	}

	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Infow("Configuration loaded",
		"environment", cfg.Server.Environment,
		"port", cfg.Server.Port,
		"transport_mode", cfg.Transport.Mode,
		"database_configured", cfg.Database.Configured(),
		"email_configured", cfg.Email.ResendAPIKey != "",
	)
	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	switch cfg.Server.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("invalid environment %q", cfg.Server.Environment)
	}
	switch cfg.Transport.Mode {
	case TransportAuto, TransportRemote, TransportLocal:
	default:
		return fmt.Errorf("invalid transport mode %q", cfg.Transport.Mode)
	}
	if cfg.Transport.Mode == TransportRemote && cfg.Transport.RemoteBaseURL == "" {
		return fmt.Errorf("remote transport mode requires TRANSPORT.REMOTE_BASE_URL")
	}
	if cfg.Transport.RemoteBaseURL != "" {
		if _, err := url.ParseRequestURI(cfg.Transport.RemoteBaseURL); err != nil {
			return fmt.Errorf("invalid remote base URL %q: %w", cfg.Transport.RemoteBaseURL, err)
		}
	}
	if cfg.Database.Configured() && cfg.Database.Name == "" {
		return fmt.Errorf("database name is required when a database host is set")
	}
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		return fmt.Errorf("admin credentials must not be empty")
	}
	return nil
}
