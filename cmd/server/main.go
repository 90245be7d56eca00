/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the shift bonus engine server. Handles
  configuration, logging, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse environment configuration
  2. Build the zap logger
  3. Create the API handler and router
  4. Start server with graceful shutdown

ENVIRONMENT:
  ENVIRONMENT              development | production (default: development)
  SERVER_PORT              HTTP server port (default: 8080)
  SERVER_READ_TIMEOUT      Seconds (default: 10)
  SERVER_WRITE_TIMEOUT     Seconds (default: 15)
  SERVER_IDLE_TIMEOUT      Seconds (default: 60)
  SERVER_SHUTDOWN_TIMEOUT  Seconds (default: 10)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (shutdown timeout)
  3. Exit

EXAMPLES:
  # Run with defaults
  ./server

  # Run on a different port, JSON logs
  SERVER_PORT=3000 ENVIRONMENT=production ./server

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"

	"github.com/warp/bonus-engine/api"
)

type config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      serverConfig
}

type serverConfig struct {
	Port            int `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     int `env:"SERVER_READ_TIMEOUT" envDefault:"10"`
	WriteTimeout    int `env:"SERVER_WRITE_TIMEOUT" envDefault:"15"`
	IdleTimeout     int `env:"SERVER_IDLE_TIMEOUT" envDefault:"60"`
	ShutdownTimeout int `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Initialize handler and router
	router := api.NewRouter(api.NewHandler(logger))

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("addr", server.Addr),
			zap.String("environment", cfg.Environment))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt signal or server failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Fatal("server failed", zap.Error(err))
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
