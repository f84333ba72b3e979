// Command server runs the sdfield render/mesh job HTTP service.
//
// It exposes asynchronous render and mesh jobs over a demo scene
// registry (see pkg/scene), streams per-job progress over WebSocket, and
// serves Prometheus metrics and health probes for operability.
//
// # Architecture
//
// The server application follows a clean separation of concerns:
//
//   - Configuration loading and validation (via pkg/config)
//   - Logging setup and initialization
//   - Job submission, execution, and progress tracking (via pkg/server)
//   - Server lifecycle management with graceful shutdown
//   - Signal handling for SIGINT and SIGTERM
//
// # Startup Sequence
//
// 1. Load configuration from environment variables with secure defaults
// 2. Configure logging based on LOG_LEVEL setting
// 3. Build the HTTP handler tree and bind a TCP listener
// 4. Start listening for connections
// 5. Handle shutdown signals gracefully
//
// # Environment Variables
//
// The server supports the following environment variables (see
// pkg/config for the complete, authoritative list):
//
//   - SERVER_PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging verbosity (debug, info, warn, error; default: info)
//   - ENABLE_DEV_MODE: Development mode flag, relaxes WebSocket origin checks (default: true)
//   - IMAGE_WIDTH, IMAGE_HEIGHT: Default render resolution (default: 512x512)
//   - GRID_RESOLUTION: Default per-axis voxel resolution (default: 64)
//   - MAX_CONCURRENT_JOBS: Render/mesh jobs running at once (default: 4)
//
// # Usage
//
// Run the server with default settings:
//
//	./server
//
// Run with custom port and debug logging:
//
//	SERVER_PORT=9000 LOG_LEVEL=debug ./server
//
// # Graceful Shutdown
//
// The server handles SIGINT (Ctrl+C) and SIGTERM signals gracefully:
//
// 1. Stop accepting new connections
// 2. Wait for in-flight HTTP requests to finish, up to the timeout
// (background render/mesh jobs are not waited for)
// 3. Close all active connections
// 4. Exit cleanly
//
// The shutdown process has a configurable timeout (SHUTDOWN_TIMEOUT,
// default 30s) before forcing exit.
package main
