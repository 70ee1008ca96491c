// Package startup prepares the application server
package startup

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kronotime-SAS/Festina/internal/application/container"
	"github.com/Kronotime-SAS/Festina/internal/infrastructure/observability/logging"
	"github.com/Kronotime-SAS/Festina/internal/presentation/http/server"
	"github.com/Kronotime-SAS/Festina/pkg/config"
)

// Initialize performs the startup sequence and blocks until SIGINT/SIGTERM
func Initialize() error {
	start := time.Now().UTC()

	// Step 1: Logging
	logger, err := NewLogger()
	if err != nil {
		return err
	}
	defer logger.Close()

	if config.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// Step 2: Dependency injection container
	logger.Startup().Info("Initializing dependency injection container...")
	appContainer, err := container.NewContainer(logger)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	logger.Startup().Info("Container initialized", "sliderKeys", appContainer.SlideRegistry.Keys())

	// Step 3: Cache warming, in the background so the listener comes up at once
	if config.WarmOnStartup {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), config.StorefrontTimeout*2)
			defer cancel()
			_ = appContainer.WarmingService.WarmAll(ctx)
		}()
	}

	// Step 4: HTTP server
	httpServer := server.New(config.Port, appContainer)

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- httpServer.Start()
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"port", config.Port,
		"storeDomain", config.StoreDomain)

	select {
	case <-gracefulShutdown:
		logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")
	case err := <-serverErr:
		return err
	}

	shutdownStart := time.Now()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	} else {
		logger.Shutdown().Info("HTTP server stopped successfully")
	}

	logger.Shutdown().Info("Application shutdown complete",
		"totalUptime", time.Since(start),
		"shutdownDuration", time.Since(shutdownStart))

	return nil
}

// NewLogger builds the channeled logger from LOG_LEVEL, LOG_FORMAT and LOG_DIR
func NewLogger() (*logging.ChanneledLogger, error) {
	level, err := logging.ParseLevel(config.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}

	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		Output:        os.Stdout,
		LogDirectory:  config.LogDir,
		JSONFormat:    config.LogFormat == "json",
		IncludeSource: level == slog.LevelDebug,
		DefaultLevel:  level,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}
	return logger, nil
}
