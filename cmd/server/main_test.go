package main

import (
	"bytes"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdfield/pkg/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("IMAGE_WIDTH", "16")
	t.Setenv("IMAGE_HEIGHT", "16")
	t.Setenv("GRID_RESOLUTION", "8")
	t.Setenv("MAX_CONCURRENT_JOBS", "2")
	t.Setenv("JOB_RATE_LIMIT_PER_SECOND", "100")
	t.Setenv("JOB_RATE_LIMIT_BURST", "100")
	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

func TestConfigureLogging(t *testing.T) {
	tests := []struct {
		name          string
		logLevel      string
		expectedLevel logrus.Level
	}{
		{name: "debug level", logLevel: "debug", expectedLevel: logrus.DebugLevel},
		{name: "info level", logLevel: "info", expectedLevel: logrus.InfoLevel},
		{name: "warn level", logLevel: "warn", expectedLevel: logrus.WarnLevel},
		{name: "error level", logLevel: "error", expectedLevel: logrus.ErrorLevel},
		{name: "invalid level falls back to info", logLevel: "invalid", expectedLevel: logrus.InfoLevel},
		{name: "empty level falls back to info", logLevel: "", expectedLevel: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logrus.SetOutput(io.Discard)
			defer logrus.SetOutput(os.Stderr)

			configureLogging(tt.logLevel)
			assert.Equal(t, tt.expectedLevel, logrus.GetLevel())
		})
	}
}

func TestLogStartupInfo(t *testing.T) {
	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	defer logrus.SetOutput(os.Stderr)

	cfg := testConfig(t)
	logStartupInfo(cfg)

	output := buf.String()
	assert.Contains(t, output, "Starting sdfield render/mesh job server")
}

func TestSetupShutdownHandling(t *testing.T) {
	sigChan, errChan := setupShutdownHandling()

	assert.NotNil(t, sigChan)
	assert.NotNil(t, errChan)
	assert.Equal(t, 1, cap(sigChan))
	assert.Equal(t, 1, cap(errChan))

	signal.Stop(sigChan)
}

func TestInitializeServerWithValidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.ServerPort = 0

	srv, listener := initializeServer(cfg)

	assert.NotNil(t, srv)
	assert.NotNil(t, listener)

	addr := listener.Addr().(*net.TCPAddr)
	assert.Greater(t, addr.Port, 0)

	listener.Close()
}

func TestStartServerAsync(t *testing.T) {
	cfg := testConfig(t)
	srv, listener := initializeServer(cfg)
	defer listener.Close()

	errChan := make(chan error, 1)
	startServerAsync(srv, listener, errChan)

	time.Sleep(50 * time.Millisecond)

	select {
	case err := <-errChan:
		t.Fatalf("server failed unexpectedly: %v", err)
	default:
	}

	listener.Close()
	time.Sleep(100 * time.Millisecond)
}

func TestWaitForShutdownSignalOnSignal(t *testing.T) {
	sigChan := make(chan os.Signal, 1)
	errChan := make(chan error, 1)

	go func() {
		time.Sleep(10 * time.Millisecond)
		sigChan <- syscall.SIGINT
	}()

	done := make(chan struct{})
	go func() {
		waitForShutdownSignal(sigChan, errChan)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("waitForShutdownSignal did not return after signal")
	}
}

func TestWaitForShutdownSignalOnError(t *testing.T) {
	sigChan := make(chan os.Signal, 1)
	errChan := make(chan error, 1)

	go func() {
		time.Sleep(10 * time.Millisecond)
		errChan <- assert.AnError
	}()

	done := make(chan struct{})
	go func() {
		waitForShutdownSignal(sigChan, errChan)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("waitForShutdownSignal did not return after error")
	}
}

func TestPerformGracefulShutdown(t *testing.T) {
	logrus.SetOutput(io.Discard)
	defer logrus.SetOutput(os.Stderr)

	cfg := testConfig(t)
	srv, listener := initializeServer(cfg)
	defer listener.Close()

	errChan := make(chan error, 1)
	startServerAsync(srv, listener, errChan)
	time.Sleep(20 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		performGracefulShutdown(cfg, srv)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("graceful shutdown did not complete in time")
	}
}

func TestLoadAndConfigureSystem(t *testing.T) {
	os.Setenv("SERVER_PORT", "9999")
	os.Setenv("LOG_LEVEL", "warn")
	defer os.Unsetenv("SERVER_PORT")
	defer os.Unsetenv("LOG_LEVEL")

	logrus.SetOutput(io.Discard)
	defer logrus.SetOutput(os.Stderr)

	cfg := loadAndConfigureSystem()

	assert.NotNil(t, cfg)
	assert.Equal(t, 9999, cfg.ServerPort)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func BenchmarkConfigureLogging(b *testing.B) {
	logrus.SetOutput(io.Discard)
	defer logrus.SetOutput(os.Stderr)

	for i := 0; i < b.N; i++ {
		configureLogging("info")
	}
}

func BenchmarkSetupShutdownHandling(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sigChan, _ := setupShutdownHandling()
		signal.Stop(sigChan)
	}
}
