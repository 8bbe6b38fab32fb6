// Package config handles application configuration from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Server     ServerConfig    `yaml:"server"`
	Database   DatabaseConfig  `yaml:"database"`
	Detection  DetectionConfig `yaml:"detection"`
	Catalogue  CatalogueConfig `yaml:"authority_catalogue"`
	RateLimits RateLimitConfig `yaml:"rate_limits"`
	Logging    LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"` // sqlite file
}

type DetectionConfig struct {
	// ScamThreshold is the minimum score that flips a verdict to scam.
	ScamThreshold int `yaml:"scam_threshold"`
}

type CatalogueConfig struct {
	TTLHours            int  `yaml:"ttl_hours"`
	ProbeTimeoutSeconds int  `yaml:"probe_timeout_seconds"`
	EnableDiscovery     bool `yaml:"enable_discovery"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"default_requests_per_minute"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// TTL returns the catalogue freshness window as a duration.
func (c CatalogueConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// ProbeTimeout returns the per-candidate discovery probe timeout.
func (c CatalogueConfig) ProbeTimeout() time.Duration {
	return time.Duration(c.ProbeTimeoutSeconds) * time.Second
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
		},
		Database: DatabaseConfig{
			Path: "./data/mantis.db",
		},
		Detection: DetectionConfig{
			ScamThreshold: 35,
		},
		Catalogue: CatalogueConfig{
			TTLHours:            6,
			ProbeTimeoutSeconds: 3,
			EnableDiscovery:     true,
		},
		RateLimits: RateLimitConfig{
			RequestsPerMinute: 60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s (run with --generate-config to create one)", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Interpolate environment variables
	content := interpolateEnvVars(string(data))

	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// GenerateSample creates a sample configuration file.
func GenerateSample(path string) error {
	sample := `# Mantis Configuration
# See documentation for all options

server:
  port: 8080

database:
  path: ./data/mantis.db

detection:
  scam_threshold: 35

authority_catalogue:
  ttl_hours: 6
  probe_timeout_seconds: 3
  enable_discovery: true

rate_limits:
  default_requests_per_minute: 60

logging:
  level: info  # debug, info, warn, error
  format: json # json or text
`
	return os.WriteFile(path, []byte(sample), 0644)
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}

	if c.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}

	if c.Detection.ScamThreshold < 0 || c.Detection.ScamThreshold > 100 {
		return fmt.Errorf("scam threshold must be within [0,100], got %d", c.Detection.ScamThreshold)
	}

	if c.Catalogue.TTLHours < 1 {
		return fmt.Errorf("catalogue TTL must be at least 1 hour, got %d", c.Catalogue.TTLHours)
	}

	if c.Catalogue.ProbeTimeoutSeconds < 1 {
		return fmt.Errorf("probe timeout must be at least 1 second, got %d", c.Catalogue.ProbeTimeoutSeconds)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("unsupported log level: %s", c.Logging.Level)
	}

	return nil
}

// interpolateEnvVars replaces ${VAR_NAME} with environment variable values.
func interpolateEnvVars(content string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	return re.ReplaceAllStringFunc(content, func(match string) string {
		varName := strings.TrimPrefix(strings.TrimSuffix(match, "}"), "${")
		if value := os.Getenv(varName); value != "" {
			return value
		}
		return match // Keep original if not set
	})
}
