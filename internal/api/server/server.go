package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-catalog-indexer/internal/api/middleware"
	"github.com/feral-file/ff-catalog-indexer/internal/api/rest"
	"github.com/feral-file/ff-catalog-indexer/internal/api/shared/executor"
	"github.com/feral-file/ff-catalog-indexer/internal/logger"
	"github.com/feral-file/ff-catalog-indexer/internal/metrics"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	executor   executor.Executor
	auth       *middleware.Authenticator
	metrics    *metrics.Metrics
	httpServer *http.Server
}

// New creates a new API server. metrics may be nil.
func New(cfg Config, exec executor.Executor, auth *middleware.Authenticator, m *metrics.Metrics) *Server {
	return &Server{
		config:   cfg,
		executor: exec,
		auth:     auth,
		metrics:  m,
	}
}

// Router builds the gin engine with every middleware and route
func (s *Server) Router() *gin.Engine {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())
	if s.metrics != nil {
		router.Use(middleware.Metrics(s.metrics))
		router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	rest.SetupRoutes(router, rest.NewHandler(s.executor), s.auth.Auth())

	return router
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	if !s.auth.Enabled() {
		logger.Warn("No admin credentials configured, pipeline endpoints will reject every request")
	}

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
