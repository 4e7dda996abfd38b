// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// ProjectsDir is the root directory for saved project artifacts.
	ProjectsDir string

	// Valkey (Redis-compatible session store)
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// DeepAI text-to-image settings
	DeepAIKey     string
	DeepAIBaseURL string

	// FFmpegPath is the ffmpeg binary used for video export.
	FFmpegPath string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		ProjectsDir: envOrDefault("PROJECTS_DIR", "projects"),

		ValkeyHost:     envOrDefault("VALKEY_HOST", "localhost"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		DeepAIKey:     os.Getenv("DEEPAI_API_KEY"),
		DeepAIBaseURL: os.Getenv("DEEPAI_BASE_URL"),

		FFmpegPath: envOrDefault("FFMPEG_PATH", "ffmpeg"),
	}

	if cfg.Env == "production" {
		if cfg.ValkeyPassword == "" {
			return nil, fmt.Errorf("VALKEY_PASSWORD must be set in production")
		}
	}

	return cfg, nil
}

// ValkeyAddr returns the Valkey connection address (host:port).
func (c *Config) ValkeyAddr() string {
	return fmt.Sprintf("%s:%s", c.ValkeyHost, c.ValkeyPort)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
