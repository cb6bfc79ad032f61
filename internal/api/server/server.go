package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-hotwallet/internal/adapter"
	"github.com/feral-file/ff-hotwallet/internal/api/middleware"
	"github.com/feral-file/ff-hotwallet/internal/api/rest"
	"github.com/feral-file/ff-hotwallet/internal/dispatcher"
	"github.com/feral-file/ff-hotwallet/internal/logger"
	"github.com/feral-file/ff-hotwallet/internal/metrics"
	"github.com/feral-file/ff-hotwallet/internal/store"
	"github.com/feral-file/ff-hotwallet/internal/wallet"
)

// Config holds the server configuration
type Config struct {
	Debug           bool
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	TimestampWindow time.Duration
	AllowOrigins    []string
	// MetricsPath is where prometheus is served; empty disables it
	MetricsPath string
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	store      store.Store
	wallet     wallet.Wallet
	dispatcher dispatcher.Dispatcher
	clock      adapter.Clock
	metrics    *metrics.Metrics
	httpServer *http.Server
}

// New creates a new API server. m may be nil.
func New(cfg Config, st store.Store, w wallet.Wallet, d dispatcher.Dispatcher, clock adapter.Clock, m *metrics.Metrics) *Server {
	return &Server{
		config:     cfg,
		store:      st,
		wallet:     w,
		dispatcher: d,
		clock:      clock,
		metrics:    m,
	}
}

// Router builds the gin engine with middleware and routes
func (s *Server) Router() *gin.Engine {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS(s.config.AllowOrigins))

	signature := middleware.Signature(middleware.AuthConfig{TimestampWindow: s.config.TimestampWindow}, s.store, s.clock)
	rest.SetupRoutes(router, rest.NewHandler(s.wallet, s.dispatcher), signature)

	if s.metrics != nil && s.config.MetricsPath != "" {
		router.GET(s.config.MetricsPath, gin.WrapH(s.metrics.Handler()))
	}

	return router
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
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
