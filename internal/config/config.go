// Package config loads the server settings from the environment.
package config

import (
	"os"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
)

// Config holds all server settings, populated from environment variables.
type Config struct {
	Port               string
	HTTPAddr           string
	LogLevel           string
	LogFormat          string
	GinMode            string
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	port := getEnv("PORT", "8080")

	shutdownTimeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "5s"))
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "invalid SHUTDOWN_TIMEOUT")
	}
	if shutdownTimeout <= 0 {
		return nil, pkgerrors.New("SHUTDOWN_TIMEOUT must be positive")
	}

	cfg := &Config{
		Port:               port,
		HTTPAddr:           getEnv("HTTP_ADDR", ":"+port),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		GinMode:            getEnv("GIN_MODE", "release"),
		CORSAllowedOrigins: parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
		ShutdownTimeout:    shutdownTimeout,
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, pkgerrors.Errorf("invalid LOG_FORMAT %q: expected text or json", cfg.LogFormat)
	}

	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, pkgerrors.Errorf("invalid GIN_MODE %q: expected debug, release or test", cfg.GinMode)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseOrigins splits a comma-separated origin list. Nil means all origins.
func parseOrigins(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	origins := make([]string, 0)
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return nil
	}
	return origins
}
