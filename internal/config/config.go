package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	Port    string

	// Database
	DatabaseURL  string
	DBDriver     string
	DBConnection string

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		AppName: envString("APP_NAME", "Uplift"),
		AppEnv:  envString("APP_ENV", "development"),
		Port:    envString("PORT", "8080"),

		DatabaseURL: envRequired("DATABASE_URL"),

		SentryDSN: envString("SENTRY_DSN", ""),
	}

	cfg.DBDriver, cfg.DBConnection = parseDatabaseURL(cfg.DatabaseURL)

	return cfg
}

// parseDatabaseURL derives the sql driver and connection string from the
// single DATABASE_URL value. Postgres URLs are passed through to pgx;
// everything else is treated as a SQLite path.
func parseDatabaseURL(url string) (driver, connection string) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return "pgx", url
	case strings.HasPrefix(url, "sqlite://"):
		return "sqlite", strings.TrimPrefix(url, "sqlite://")
	default:
		return "sqlite", url
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Sanitized returns a copy of the config with only public/safe fields.
// The database connection string is excluded so it never reaches request
// contexts or templates.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName: c.AppName,
		AppEnv:  c.AppEnv,
		Port:    c.Port,
	}
}
