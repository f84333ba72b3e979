package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"sdfield/pkg/config"
	"sdfield/pkg/server"
)

func main() {
	cfg := loadAndConfigureSystem()
	srv, listener := initializeServer(cfg)
	executeServerLifecycle(cfg, srv, listener)
}

// loadAndConfigureSystem loads configuration and sets up logging.
func loadAndConfigureSystem() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	configureLogging(cfg.LogLevel)
	logStartupInfo(cfg)
	return cfg
}

// configureLogging sets up the logging system based on configuration.
func configureLogging(logLevel string) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.WithError(err).Warn("Invalid log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// logStartupInfo logs server startup information.
func logStartupInfo(cfg *config.Config) {
	logrus.WithFields(logrus.Fields{
		"port":            cfg.ServerPort,
		"imageResolution": fmt.Sprintf("%dx%d", cfg.ImageWidth, cfg.ImageHeight),
		"gridResolution":  cfg.GridResolution,
		"logLevel":        cfg.LogLevel,
		"devMode":         cfg.EnableDevMode,
	}).Info("Starting sdfield render/mesh job server")
}

// initializeServer creates the HTTP handler and network listener.
func initializeServer(cfg *config.Config) (*http.Server, net.Listener) {
	handler := server.NewServer(cfg)

	httpSrv := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.ServerPort))
	if err != nil {
		logrus.WithError(err).Fatal("Failed to start listener")
	}

	return httpSrv, listener
}

// executeServerLifecycle handles the complete server lifecycle including startup and shutdown.
func executeServerLifecycle(cfg *config.Config, srv *http.Server, listener net.Listener) {
	sigChan, errChan := setupShutdownHandling()
	startServerAsync(srv, listener, errChan)
	waitForShutdownSignal(sigChan, errChan)
	performGracefulShutdown(cfg, srv)
}

// setupShutdownHandling creates channels for graceful shutdown signal handling.
func setupShutdownHandling() (chan os.Signal, chan error) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	errChan := make(chan error, 1)
	return sigChan, errChan
}

// startServerAsync starts the server in a background goroutine.
func startServerAsync(srv *http.Server, listener net.Listener, errChan chan error) {
	go func() {
		logrus.WithField("address", listener.Addr()).Info("Server listening")
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server failed: %w", err)
		}
	}()
}

// waitForShutdownSignal waits for either a shutdown signal or server error.
func waitForShutdownSignal(sigChan chan os.Signal, errChan chan error) {
	select {
	case sig := <-sigChan:
		logrus.WithField("signal", sig).Info("Received shutdown signal")
	case err := <-errChan:
		logrus.WithError(err).Error("Server error")
	}
}

// performGracefulShutdown handles the graceful server shutdown process.
func performGracefulShutdown(cfg *config.Config, srv *http.Server) {
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	logrus.Info("Shutting down server gracefully...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("Error during graceful shutdown")
	}

	select {
	case <-shutdownCtx.Done():
		logrus.Warn("Shutdown timeout exceeded, forcing exit")
	case <-time.After(1 * time.Second):
		logrus.Info("Server shutdown completed")
	}
}
