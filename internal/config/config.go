// Package config loads the server configuration from an optional YAML file
// and TEMPLATE_MCP_* environment overrides.
package config

import (
	"fmt"
	"os"

	"github.com/averycrespi/template-mcp/pkg/types"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings
const (
	EnvTransport = "TEMPLATE_MCP_TRANSPORT"
	EnvHost      = "TEMPLATE_MCP_HOST"
	EnvPort      = "TEMPLATE_MCP_PORT"
	EnvLogLevel  = "TEMPLATE_MCP_LOG_LEVEL"
	EnvLogFormat = "TEMPLATE_MCP_LOG_FORMAT"
	EnvAssetsDir = "TEMPLATE_MCP_ASSETS_DIR"
	EnvConfig    = "TEMPLATE_MCP_CONFIG"
)

// Default returns the configuration used when nothing is overridden
func Default() *types.Config {
	return &types.Config{
		Transport: types.TransportStdio,
		Host:      "127.0.0.1",
		Port:      8080,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads the config file at path (if any), applies environment overrides
// and validates the result.
func Load(path string) (*types.Config, error) {
	cfg, err := LoadUnvalidated(path)
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadUnvalidated layers the config file and environment over the defaults
// without validating, so callers can apply further overrides first.
func LoadUnvalidated(path string) (*types.Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *types.Config) error {
	if v := os.Getenv(EnvTransport); v != "" {
		cfg.Transport = v
	}
	if v := os.Getenv(EnvHost); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := cast.ToIntE(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv(EnvAssetsDir); v != "" {
		cfg.AssetsDir = v
	}
	return nil
}

// Validate checks that the configuration can be served
func Validate(cfg *types.Config) error {
	switch cfg.Transport {
	case types.TransportStdio, types.TransportSSE, types.TransportStreamableHTTP:
	default:
		return fmt.Errorf("unsupported transport %q", cfg.Transport)
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("port out of range: %d", cfg.Port)
	}

	if cfg.AssetsDir != "" {
		if stat, err := os.Stat(cfg.AssetsDir); err != nil || !stat.IsDir() {
			return fmt.Errorf("invalid assets directory: %s", cfg.AssetsDir)
		}
	}

	return nil
}
