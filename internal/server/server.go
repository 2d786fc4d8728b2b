// Package server exposes the analyzer endpoint consumed by the resumefit
// client: POST /match with a resume and a job description.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spigell/resumefit/internal/ai"
)

const (
	DefaultAddress       = ":8000"
	DefaultAllowedOrigin = "http://localhost:5173"
	shutdownTimeout      = 30 * time.Second
)

// Config holds the HTTP server settings.
type Config struct {
	Address        string
	AllowedOrigins []string
	Debug          bool
}

// Server serves match requests backed by an ai.Matcher.
type Server struct {
	cfg     Config
	matcher ai.Matcher
	logger  *zap.Logger
	router  *gin.Engine
}

// New validates the CORS settings and builds the router.
func New(cfg Config, matcher ai.Matcher, logger *zap.Logger) (*Server, error) {
	if cfg.Address == "" {
		cfg.Address = DefaultAddress
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{DefaultAllowedOrigin}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	corsCfg := corsConfig(cfg.AllowedOrigins)
	if err := corsCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid allowed origins %v: %w", cfg.AllowedOrigins, err)
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{cfg: cfg, matcher: matcher, logger: logger}
	s.router = s.routes(corsCfg)
	return s, nil
}

// Handler returns the configured router.
func (s *Server) Handler() http.Handler {
	return s.router
}

func corsConfig(origins []string) cors.Config {
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

func (s *Server) routes(corsCfg cors.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(s.logger))
	router.Use(cors.New(corsCfg))

	router.GET("/health", s.health)
	router.POST("/match", s.match)

	return router
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Address,
		Handler:      s.router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting analyzer server", zap.String("address", s.cfg.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down analyzer server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
