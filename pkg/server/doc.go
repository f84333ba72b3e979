// Package server exposes the render and mesh kernels over HTTP: job
// submission, health and readiness checks, Prometheus metrics, and a
// WebSocket progress stream per job.
package server
