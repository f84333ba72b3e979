// Package config provides configuration management for the sdfield render
// and mesh job server. It handles environment variable loading,
// validation, and provides secure defaults for production deployment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Config represents the server configuration with environment variable
// support. All configuration values can be set via environment variables
// or will use secure defaults appropriate for production deployment.
// OriginAllowed reads the fields under the mutex; the exported fields
// themselves are plain values with no accessor methods.
type Config struct {
	// mu provides thread-safe access to configuration fields when the Config
	// instance is shared across goroutines. Use RLock for reads and Lock for writes.
	mu sync.RWMutex `json:"-"`

	// ServerPort is the port the HTTP job server will listen on.
	ServerPort int `json:"server_port"`

	// LogLevel controls the logging verbosity (debug, info, warn, error).
	LogLevel string `json:"log_level"`

	// AllowedOrigins is a list of allowed WebSocket origins for progress
	// streaming CORS.
	AllowedOrigins []string `json:"allowed_origins"`

	// EnableDevMode enables development-friendly settings (broader CORS,
	// verbose logging).
	EnableDevMode bool `json:"enable_dev_mode"`

	// RequestTimeout is the maximum duration for processing an HTTP request.
	RequestTimeout time.Duration `json:"request_timeout"`

	// ShutdownTimeout is the maximum duration for graceful server shutdown.
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`

	// Render job defaults

	// ImageWidth and ImageHeight are the default render resolution.
	ImageWidth  int `json:"image_width"`
	ImageHeight int `json:"image_height"`

	// RenderWorkers is loaded and validated (it must be non-negative) but
	// is not passed to the renderer: a render job always fills its rows
	// with GOMAXPROCS goroutines, whatever this value is.
	RenderWorkers int `json:"render_workers"`

	// Mesh job defaults

	// GridResolution is the default per-axis voxel resolution.
	GridResolution int `json:"grid_resolution"`

	// Job queue and rate limiting

	// MaxConcurrentJobs bounds how many render/mesh jobs run at once.
	MaxConcurrentJobs int `json:"max_concurrent_jobs"`

	// JobRateLimitPerSecond throttles job submissions. One limiter is
	// shared by all submissions; clients are not limited separately.
	JobRateLimitPerSecond float64 `json:"job_rate_limit_per_second"`

	// JobRateLimitBurst is the maximum burst of job submissions allowed.
	JobRateLimitBurst int `json:"job_rate_limit_burst"`

	// ProfileDir is the directory containing YAML camera/grid presets
	// consumed by LoadProfiles.
	ProfileDir string `json:"profile_dir"`
}

// Load creates a new Config instance by reading from environment variables
// and applying secure defaults. It validates all configuration values and
// returns an error if any required values are missing or invalid.
func Load() (*Config, error) {
	logrus.WithFields(logrus.Fields{
		"function": "Load",
		"package":  "config",
	}).Debug("entering Load")

	config := &Config{
		ServerPort:      getEnvAsInt("SERVER_PORT", 8080),
		LogLevel:        getEnvAsString("LOG_LEVEL", "info"),
		AllowedOrigins:  getEnvAsStringSlice("ALLOWED_ORIGINS", []string{}),
		EnableDevMode:   getEnvAsBool("ENABLE_DEV_MODE", true),
		RequestTimeout:  getEnvAsDuration("REQUEST_TIMEOUT", 30*time.Second),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 30*time.Second),

		ImageWidth:    getEnvAsInt("IMAGE_WIDTH", 512),
		ImageHeight:   getEnvAsInt("IMAGE_HEIGHT", 512),
		RenderWorkers: getEnvAsInt("RENDER_WORKERS", 0),

		GridResolution: getEnvAsInt("GRID_RESOLUTION", 64),

		MaxConcurrentJobs:     getEnvAsInt("MAX_CONCURRENT_JOBS", 4),
		JobRateLimitPerSecond: getEnvAsFloat64("JOB_RATE_LIMIT_PER_SECOND", 2),
		JobRateLimitBurst:     getEnvAsInt("JOB_RATE_LIMIT_BURST", 5),

		ProfileDir: getEnvAsString("PROFILE_DIR", "./profiles"),
	}

	logrus.WithFields(logrus.Fields{
		"function":    "Load",
		"package":     "config",
		"server_port": config.ServerPort,
		"dev_mode":    config.EnableDevMode,
		"log_level":   config.LogLevel,
	}).Debug("configuration loaded, starting validation")

	if err := config.validate(); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Load",
			"package":  "config",
			"error":    err,
		}).Error("configuration validation failed")
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function":    "Load",
		"package":     "config",
		"server_port": config.ServerPort,
		"dev_mode":    config.EnableDevMode,
		"log_level":   config.LogLevel,
	}).Debug("exiting Load - configuration successfully loaded and validated")

	return config, nil
}

// validate checks that all configuration values are valid and consistent.
func (c *Config) validate() error {
	if err := c.validateServerSettings(); err != nil {
		return err
	}
	if err := c.validateTimeouts(); err != nil {
		return err
	}
	if err := c.validateSecuritySettings(); err != nil {
		return err
	}
	if err := c.validateRenderSettings(); err != nil {
		return err
	}
	if err := c.validateJobSettings(); err != nil {
		return err
	}
	return nil
}

// validateServerSettings checks server port and log level configuration.
func (c *Config) validateServerSettings() error {
	if c.ServerPort < 1 || c.ServerPort > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", c.ServerPort)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	found := false
	for _, level := range validLogLevels {
		if strings.ToLower(c.LogLevel) == level {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("log level must be one of %v, got %s", validLogLevels, c.LogLevel)
	}

	return nil
}

// validateTimeouts ensures timeout values meet minimum requirements.
func (c *Config) validateTimeouts() error {
	if c.RequestTimeout < time.Second {
		return fmt.Errorf("request timeout must be at least 1 second, got %v", c.RequestTimeout)
	}
	if c.ShutdownTimeout < time.Second {
		return fmt.Errorf("shutdown timeout must be at least 1 second, got %v", c.ShutdownTimeout)
	}
	return nil
}

// validateSecuritySettings checks security-related configuration.
func (c *Config) validateSecuritySettings() error {
	if !c.EnableDevMode && len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("allowed origins must be specified when dev mode is disabled")
	}
	return nil
}

// validateRenderSettings ensures the default render resolution and grid
// resolution satisfy the numerical kernels' invariants: voxel-grid
// resolution >= 1, image dimensions must be positive.
func (c *Config) validateRenderSettings() error {
	if c.ImageWidth < 1 || c.ImageHeight < 1 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", c.ImageWidth, c.ImageHeight)
	}
	if c.RenderWorkers < 0 {
		return fmt.Errorf("render workers must be non-negative, got %d", c.RenderWorkers)
	}
	if c.GridResolution < 1 {
		return fmt.Errorf("grid resolution must be at least 1, got %d", c.GridResolution)
	}
	return nil
}

// validateJobSettings ensures job concurrency and rate limiting parameters
// are usable.
func (c *Config) validateJobSettings() error {
	if c.MaxConcurrentJobs < 1 {
		return fmt.Errorf("max concurrent jobs must be at least 1, got %d", c.MaxConcurrentJobs)
	}
	if c.JobRateLimitPerSecond <= 0 {
		return fmt.Errorf("job rate limit per second must be greater than 0, got %v", c.JobRateLimitPerSecond)
	}
	if c.JobRateLimitBurst < 1 {
		return fmt.Errorf("job rate limit burst must be at least 1, got %d", c.JobRateLimitBurst)
	}
	return nil
}

// OriginAllowed checks if the given origin is allowed for WebSocket
// progress-stream connections. In development mode, all origins are
// allowed. This method is thread-safe.
func (c *Config) OriginAllowed(origin string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.EnableDevMode {
		return true
	}

	for _, allowed := range c.AllowedOrigins {
		if origin == allowed {
			return true
		}
	}

	return false
}

// Helper functions for environment variable parsing with type safety and defaults

func getEnvAsString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsStringSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		result := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
