// Package server provides HTTP server setup and configuration.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sebasr/greeting-service/internal/config"
	"github.com/sebasr/greeting-service/internal/handlers"
	"github.com/sebasr/greeting-service/internal/middleware"
	"github.com/sebasr/greeting-service/internal/models"
)

// HealthPath is the liveness probe route; it is excluded from access logs
const HealthPath = "/health"

// New creates a new Gin router with all routes configured
func New(cfg *config.Config, logger zerolog.Logger) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	// gin.New() instead of gin.Default(): logging and recovery go through zerolog
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger, HealthPath))
	router.Use(middleware.Recovery(logger))

	// Add CORS middleware for web client support
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Encoding", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithDecompressFn(middleware.GzipDecompress)))
	router.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Not found"})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{Error: "Method not allowed"})
	})

	router.POST("/", handlers.GreetingHandler)
	router.GET(HealthPath, handlers.HealthHandler)

	return router
}

// Serve listens on cfg.Address() and serves handler until ctx is cancelled
func Serve(ctx context.Context, cfg config.ServerConfig, handler http.Handler, logger zerolog.Logger) error {
	ln, err := net.Listen("tcp", cfg.Address())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Address(), err)
	}
	return ServeListener(ctx, ln, cfg, handler, logger)
}

// ServeListener serves handler on ln until ctx is cancelled, then shuts the
// server down, waiting at most cfg.ShutdownTimeout for in-flight requests.
// It returns nil after a clean shutdown.
func ServeListener(ctx context.Context, ln net.Listener, cfg config.ServerConfig, handler http.Handler, logger zerolog.Logger) error {
	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorLog:     log.New(logger.With().Str("component", "http").Logger(), "", 0),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	logger.Info().
		Str("addr", ln.Addr().String()).
		Int64("max_body_bytes", cfg.MaxBodyBytes).
		Msg("Starting server")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info().Msg("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}

	logger.Info().Msg("Server stopped")
	return nil
}
