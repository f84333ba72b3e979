// Package config provides configuration management for the sdfield
// render/mesh job server.
//
// This package handles environment variable loading with type-safe
// parsing, applies secure production defaults, and performs validation
// of all configuration values.
//
// # Loading Configuration
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Environment Variables
//
// Server settings:
//   - SERVER_PORT: HTTP port (default: 8080)
//   - LOG_LEVEL: Logging verbosity (default: "info")
//   - REQUEST_TIMEOUT: HTTP request timeout (default: 30s)
//   - SHUTDOWN_TIMEOUT: Graceful shutdown timeout (default: 30s)
//
// Security:
//   - ENABLE_DEV_MODE: Enable development mode (default: true)
//   - ALLOWED_ORIGINS: CORS/WebSocket allowed origins (comma-separated)
//
// Render defaults:
//   - IMAGE_WIDTH, IMAGE_HEIGHT: Default render resolution (default: 512x512)
//   - RENDER_WORKERS: Validated but unused; render jobs always use GOMAXPROCS workers (default: 0)
//
// Mesh defaults:
//   - GRID_RESOLUTION: Default per-axis voxel resolution (default: 64)
//
// Job queue:
//   - MAX_CONCURRENT_JOBS: Render/mesh jobs running at once (default: 4)
//   - JOB_RATE_LIMIT_PER_SECOND, JOB_RATE_LIMIT_BURST: Job submission throttle
//   - PROFILE_DIR: Directory of YAML camera/grid presets (default: "./profiles")
//
// # CORS Support
//
// Use OriginAllowed to check WebSocket origins for the progress stream:
//
//	if cfg.OriginAllowed(origin) {
//	    // Allow connection
//	}
//
// In development mode (EnableDevMode=true), all origins are allowed.
package config
