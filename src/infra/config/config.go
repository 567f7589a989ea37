// Package config handles application configuration via environment variables.
// It uses kelseyhightower/envconfig for parsing and provides sensible defaults.
// A .env file in the working directory, when present, is loaded first.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
// Values are loaded from environment variables with the prefix "APP".
// Example: APP_PORT=8080, APP_LOG_LEVEL=debug
type Config struct {
	// Server configuration (embedded to flatten env vars)
	Server ServerConfig

	// Database configuration (embedded to flatten env vars)
	Database DatabaseConfig

	// Logging configuration (embedded to flatten env vars)
	Log LogConfig

	// AI provider configuration
	AI AIConfig

	// Identity provider configuration
	Auth AuthConfig

	// Event publishing configuration
	Events EventsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Port is the HTTP server port (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// Host is the HTTP server host (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// ReadTimeout is the maximum duration for reading the entire request (default: 10s)
	ReadTimeout time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`

	// WriteTimeout is the maximum duration before timing out writes of the response.
	// AI calls are slow, so the default is generous (default: 90s)
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"90s"`

	// ShutdownTimeout is the maximum duration to wait for active connections to finish (default: 30s)
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`

	// CORSOrigin is the allowed browser origin (default: *)
	CORSOrigin string `envconfig:"CORS_ORIGIN" default:"*"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	// URL, when set, takes precedence over the individual fields
	URL string `envconfig:"DATABASE_URL"`

	// Host is the database host (default: localhost)
	Host string `envconfig:"DB_HOST" default:"localhost"`

	// Port is the database port (default: 5432)
	Port int `envconfig:"DB_PORT" default:"5432"`

	// User is the database user (default: postgres)
	User string `envconfig:"DB_USER" default:"postgres"`

	// Password is the database password (required in production)
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`

	// Name is the database name (default: inkpress)
	Name string `envconfig:"DB_NAME" default:"inkpress"`

	// SSLMode is the SSL mode for the connection (default: disable)
	SSLMode string `envconfig:"DB_SSLMODE" default:"disable"`

	// MaxOpenConns is the maximum number of open connections (default: 25)
	MaxOpenConns int `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`

	// MaxIdleConns is the maximum number of idle connections (default: 5)
	MaxIdleConns int `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`

	// ConnMaxLifetime is the maximum lifetime of a connection (default: 5m)
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`

	// Migrate applies embedded migrations on startup (default: true)
	Migrate bool `envconfig:"DB_MIGRATE" default:"true"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is the log level: debug, info, warn, error (default: info)
	Level string `envconfig:"LOG_LEVEL" default:"info"`

	// Format is the log format: json, text, plain (default: json)
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// AIConfig holds generative model settings.
type AIConfig struct {
	// GeminiAPIKey authenticates against the Gemini API (required)
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`

	// Model is the model name (default: gemini-1.5-pro)
	Model string `envconfig:"GEMINI_MODEL" default:"gemini-1.5-pro"`
}

// AuthConfig holds identity provider settings.
type AuthConfig struct {
	// URL is the base URL of the auth service, e.g. https://xyz.supabase.co/auth/v1 (required)
	URL string `envconfig:"AUTH_URL"`

	// AnonKey is the public API key sent with signup/login requests
	AnonKey string `envconfig:"AUTH_ANON_KEY"`

	// JWTSecret verifies HS256 access tokens issued by the auth service (required)
	JWTSecret string `envconfig:"AUTH_JWT_SECRET"`

	// JWTAudience is the expected aud claim (default: authenticated)
	JWTAudience string `envconfig:"AUTH_JWT_AUDIENCE" default:"authenticated"`

	// Timeout bounds calls to the auth service (default: 10s)
	Timeout time.Duration `envconfig:"AUTH_TIMEOUT" default:"10s"`
}

// EventsConfig holds message broker settings.
type EventsConfig struct {
	// RabbitMQURL enables event publishing when set
	RabbitMQURL string `envconfig:"RABBITMQ_URL"`
}

// DSN returns the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// Addr returns the server address in host:port format.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate reports settings without which the service cannot run.
func (c *Config) Validate() error {
	var errs []error
	if c.AI.GeminiAPIKey == "" {
		errs = append(errs, errors.New("APP_GEMINI_API_KEY is required"))
	}
	if c.Auth.URL == "" {
		errs = append(errs, errors.New("APP_AUTH_URL is required"))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("APP_AUTH_JWT_SECRET is required"))
	}
	return errors.Join(errs...)
}

// Load reads configuration from environment variables.
// It returns an error if required variables are missing or invalid.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config

	// Load each config section separately to flatten env var names
	// This allows env vars like APP_PORT instead of APP_SERVER_PORT
	sections := []struct {
		name string
		spec any
	}{
		{"server", &cfg.Server},
		{"database", &cfg.Database},
		{"log", &cfg.Log},
		{"ai", &cfg.AI},
		{"auth", &cfg.Auth},
		{"events", &cfg.Events},
	}
	for _, s := range sections {
		if err := envconfig.Process("APP", s.spec); err != nil {
			return nil, fmt.Errorf("failed to load %s config: %w", s.name, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad loads configuration and panics on error.
// Use this only in main.go during startup.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
