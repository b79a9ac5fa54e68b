// Package config provides configuration management for the greeting service.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Log       LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port              string
	Mode              string        // Gin mode: "debug", "release" or "test"
	ReadHeaderTimeout time.Duration // Time allowed to read request headers
	ShutdownTimeout   time.Duration // Time given to in-flight requests on shutdown
	TrustedProxies    []string      // IPs or CIDRs allowed to set X-Forwarded-For; none by default
}

// RateLimitConfig holds per-client rate limiting configuration
type RateLimitConfig struct {
	Limit  int64
	Period time.Duration
}

// CORSConfig holds cross-origin configuration
type CORSConfig struct {
	AllowOrigins []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // zerolog level name
	Format string // "json" or "console"
}

// Log output formats
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:              getEnv("PORT", "8080"),
			Mode:              getEnv("GIN_MODE", gin.ReleaseMode),
			ReadHeaderTimeout: getEnvAsDuration("READ_HEADER_TIMEOUT", "5s"),
			ShutdownTimeout:   getEnvAsDuration("SHUTDOWN_TIMEOUT", "10s"),
			TrustedProxies:    getEnvAsSlice("TRUSTED_PROXIES", nil),
		},
		RateLimit: RateLimitConfig{
			Limit:  getEnvAsInt64("RATE_LIMIT", 100),
			Period: getEnvAsDuration("RATE_LIMIT_PERIOD", "1m"),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"*"}),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", LogFormatJSON)),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535, got %q", c.Server.Port)
	}

	switch c.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("GIN_MODE must be one of debug, release, test, got %q", c.Server.Mode)
	}

	if c.Server.ReadHeaderTimeout <= 0 {
		return errors.New("READ_HEADER_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}

	for _, proxy := range c.Server.TrustedProxies {
		if net.ParseIP(proxy) != nil {
			continue
		}
		if _, _, err := net.ParseCIDR(proxy); err != nil {
			return fmt.Errorf("TRUSTED_PROXIES entry %q is not an IP or CIDR", proxy)
		}
	}

	if c.RateLimit.Limit <= 0 {
		return errors.New("RATE_LIMIT must be positive")
	}
	if c.RateLimit.Period <= 0 {
		return errors.New("RATE_LIMIT_PERIOD must be positive")
	}

	if len(c.CORS.AllowOrigins) == 0 {
		return errors.New("CORS_ALLOW_ORIGINS must list at least one origin")
	}
	// cors.New panics on a bad origin, so reject it here
	if err := (cors.Config{AllowOrigins: c.CORS.AllowOrigins}).Validate(); err != nil {
		return fmt.Errorf("invalid CORS_ALLOW_ORIGINS: %w", err)
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if c.Log.Format != LogFormatJSON && c.Log.Format != LogFormatConsole {
		return fmt.Errorf("LOG_FORMAT must be %q or %q, got %q", LogFormatJSON, LogFormatConsole, c.Log.Format)
	}

	return nil
}

// Addr returns the listen address for the HTTP server
func (s *ServerConfig) Addr() string {
	return ":" + s.Port
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt64 gets an environment variable as an int64 or returns a default value
func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration gets an environment variable as a duration or returns a default value
func getEnvAsDuration(key, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		defaultDuration, _ := time.ParseDuration(defaultValue)
		return defaultDuration
	}
	return value
}

// getEnvAsSlice splits a comma separated environment variable, dropping blanks
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var values []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}
