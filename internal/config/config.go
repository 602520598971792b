// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `envconfig:"PORT" default:"8080"`

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string `envconfig:"DATABASE_URL"`

	// LogLevel controls the minimum log level: debug, info, warn, or error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogFile, when set, receives a copy of every log line and is rotated
	// by size.
	LogFile string `envconfig:"LOG_FILE"`

	// CORSRaw is the comma-separated CORS_ORIGINS value; use CORSOrigins.
	CORSRaw string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`

	// CORSOrigins is the parsed list of allowed cross-origin request origins.
	CORSOrigins []string `ignored:"true"`

	// JWTSecret verifies the HS256 bearer tokens of the identity provider. Required.
	JWTSecret string `envconfig:"JWT_SECRET"`

	// GeocoderURL is the base URL of the Nominatim-compatible place search.
	GeocoderURL string `envconfig:"GEOCODER_URL" default:"https://nominatim.openstreetmap.org"`

	// RendererURL is the base URL of the document rendering service.
	RendererURL string `envconfig:"RENDERER_URL" default:"http://localhost:3001"`

	// MaxBodyBytes caps the size of request bodies.
	MaxBodyBytes int64 `envconfig:"MAX_BODY_BYTES" default:"1048576"`
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg.CORSOrigins = splitCSV(cfg.CORSRaw)

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	if cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error; got %q", cfg.LogLevel)
	}

	return cfg, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
