// Package httpapi serves the tutor over HTTP.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/bnema/course-tutor/internal/observability"
)

const (
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 8000
	defaultShutdownTimeout = 10 * time.Second
	defaultServiceName     = "course-tutor"
)

type Config struct {
	Host           string
	Port           int
	AllowedOrigins []string
	ServiceName    string
	Debug          bool
	// Metrics is mounted at /metrics when set.
	Metrics http.Handler
}

func (c Config) addr() string {
	host := c.Host
	if host == "" {
		host = DefaultHost
	}
	port := c.Port
	if port == 0 {
		port = DefaultPort
	}
	return net.JoinHostPort(host, fmt.Sprint(port))
}

type Server struct {
	cfg     Config
	engine  *gin.Engine
	logger  *slog.Logger
	serving atomic.Bool
}

func NewServer(cfg Config, handlers *Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}

	s := &Server{cfg: cfg, logger: logger}
	s.engine = s.newEngine(handlers)
	return s
}

// Handler exposes the routed engine, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Ready() bool {
	return s.serving.Load()
}

func (s *Server) newEngine(handlers *Handlers) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(otelgin.Middleware(s.cfg.ServiceName))
	engine.Use(cors.New(corsConfig(s.cfg.AllowedOrigins)))
	if s.cfg.Debug {
		engine.Use(requestLogger(s.logger))
	}

	engine.GET("/healthz/liveness", gin.WrapF(observability.Liveness))
	engine.GET("/healthz/readiness", gin.WrapF(observability.Readiness(s.Ready)))
	if s.cfg.Metrics != nil {
		engine.GET("/metrics", gin.WrapH(s.cfg.Metrics))
	}

	RegisterRoutes(engine.Group("/api"), handlers)
	return engine
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		logger.Debug("http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("elapsed", time.Since(started)),
		)
	}
}

// Run serves until ctx is done, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.addr(), err)
	}
	return s.Serve(ctx, listener)
}

func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(listener)
	}()
	s.serving.Store(true)
	s.logger.Info("http server listening", slog.String("addr", listener.Addr().String()))

	select {
	case err := <-errCh:
		s.serving.Store(false)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
	}

	s.serving.Store(false)
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve http: %w", err)
	}
	s.logger.Info("http server stopped")
	return nil
}
