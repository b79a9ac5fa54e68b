// Package server provides HTTP server setup and configuration.
package server

import (
	"context"
	"errors"
	"fmt"
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
)

// HealthPath is excluded from request logging
const HealthPath = "/health"

// Dependencies holds all dependencies needed to create a server
type Dependencies struct {
	Config    *config.Config
	Greeter   handlers.Greeter
	Logger    zerolog.Logger
	StartedAt time.Time
}

// Route binds an HTTP method and path to a handler
type Route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// Routes returns the routing table served by the engine
func Routes(deps *Dependencies) []Route {
	greetingHandler := handlers.NewGreetingHandler(deps.Greeter)
	healthHandler := handlers.NewHealthHandler(deps.StartedAt)

	return []Route{
		{Method: http.MethodGet, Path: "/greeting", Handler: greetingHandler.Greet},
		{Method: http.MethodGet, Path: HealthPath, Handler: healthHandler.Check},
	}
}

// New creates a new Gin router with all routes configured.
// The gin mode is process global and is set by the caller.
func New(deps *Dependencies) *gin.Engine {
	// gin.Default() would add the colored stdout logger; requests are logged through zerolog instead
	router := gin.New()

	// ClientIP keys the rate limiter, so X-Forwarded-For is only honored from configured proxies
	if err := router.SetTrustedProxies(deps.Config.Server.TrustedProxies); err != nil {
		deps.Logger.Error().Err(err).Msg("invalid trusted proxies, trusting none")
		_ = router.SetTrustedProxies(nil)
	}

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(deps.Logger, HealthPath))

	// Add CORS middleware for web client support
	router.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Config.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.NewRateLimitMiddleware(deps.Config.RateLimit.Limit, deps.Config.RateLimit.Period))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	for _, r := range Routes(deps) {
		router.Handle(r.Method, r.Path, r.Handler)
	}

	return router
}

// Server runs the router on an http.Server and shuts it down gracefully
type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	logger          zerolog.Logger
}

// NewHTTPServer wraps the router built from deps in an http.Server
func NewHTTPServer(deps *Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              deps.Config.Server.Addr(),
			Handler:           New(deps),
			ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		},
		shutdownTimeout: deps.Config.Server.ShutdownTimeout,
		logger:          deps.Logger,
	}
}

// ListenAndServe listens on the configured address and serves until ctx is done
func (s *Server) ListenAndServe(ctx context.Context) error {
	// Listening separately surfaces bind errors (such as a port in use) before serving starts
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then drains in-flight
// requests for up to the shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Serve(ln)
	}()

	s.logger.Info().Str("addr", ln.Addr().String()).Msg("server listening")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info().Dur("timeout", s.shutdownTimeout).Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}
