// Package config provides configuration loading and validation for the server.
package config

import (
	"fmt"
	"os"
	"strings"
)

// DefaultRendererCommand starts the bundled Python render service when no
// override is configured.
const DefaultRendererCommand = "python3 -m uvicorn pdf_service.main:app --host 127.0.0.1 --port 8001"

// ServerConfig holds everything the HTTP server needs from the environment.
type ServerConfig struct {
	Port            string
	DatabaseURL     string
	PDFServiceURL   string
	RendererCommand []string // argv form; empty disables the supervisor spawn
}

// NewServerConfig reads the server configuration from environment variables.
// DATABASE_URL is required; everything else has a default.
func NewServerConfig() (*ServerConfig, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	cfg := &ServerConfig{
		Port:            envOrDefault("PORT", "8080"),
		DatabaseURL:     databaseURL,
		PDFServiceURL:   envOrDefault("PDF_SERVICE_URL", "http://127.0.0.1:8001"),
		RendererCommand: strings.Fields(envOrDefault("PDF_RENDERER_COMMAND", DefaultRendererCommand)),
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *ServerConfig) normalize() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if !strings.HasPrefix(c.PDFServiceURL, "http://") && !strings.HasPrefix(c.PDFServiceURL, "https://") {
		return fmt.Errorf("PDF_SERVICE_URL must be an http(s) URL, got: %s", c.PDFServiceURL)
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
