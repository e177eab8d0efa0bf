// Package web serves the read-only HTTP API over a documents tree.
package web

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"folio/internal/metrics"
	"folio/internal/ports"
)

// Server provides HTTP endpoints over the documents tree.
type Server struct {
	echo    *echo.Echo
	root    string
	indexer ports.Indexer
	logger  *zap.Logger
	config  *Config
}

// Config holds HTTP server configuration.
type Config struct {
	Host string
	Port int
}

// NewServer creates a new HTTP server rooted at the given documents path.
func NewServer(root string, indexer ports.Indexer, logger *zap.Logger, cfg *Config) (*Server, error) {
	if root == "" {
		return nil, fmt.Errorf("documents root cannot be empty")
	}
	if indexer == nil {
		return nil, fmt.Errorf("indexer cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required for request tracking and debugging")
	}
	if cfg == nil {
		cfg = &Config{
			Host: "localhost",
			Port: 8080,
		}
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve documents root: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			logger.Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", duration),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)

			metrics.RecordHTTPRequest(c.Request().Method, c.Path(), c.Response().Status, duration)
			return err
		}
	})

	s := &Server{
		echo:    e,
		root:    abs,
		indexer: indexer,
		logger:  logger,
		config:  cfg,
	}

	// Register routes
	s.registerRoutes()

	return s, nil
}

// registerRoutes sets up the HTTP endpoints.
func (s *Server) registerRoutes() {
	// Health check and metrics
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	// API routes
	s.echo.GET("/api/search", s.handleSearch)
	s.echo.GET("/api/facets", s.handleFacets)
	s.echo.GET("/api/folders", s.handleFolders)
	s.echo.GET("/api/folder/*", s.handleFolder)
	s.echo.GET("/api/file/*", s.handleFile)
	s.echo.GET("/api/stats", s.handleStats)

	// Downloads
	s.echo.GET("/download/*", s.handleDownload)
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// handleHealth returns a simple health check response.
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// resolve maps a wildcard route parameter to an absolute path under the
// documents root and the cleaned slash-separated relative path. Requests
// that climb out of the root are rejected.
func (s *Server) resolve(raw string) (abs, rel string, err error) {
	rel = path.Clean(strings.TrimPrefix(raw, "/"))
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", "", fmt.Errorf("path escapes documents root")
	}
	return filepath.Join(s.root, filepath.FromSlash(rel)), rel, nil
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.logger.Info("starting http server",
		zap.String("addr", addr),
		zap.String("root", s.root),
	)
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}
