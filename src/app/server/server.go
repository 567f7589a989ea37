// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"inkpress/src/app/http/handler"
	"inkpress/src/app/http/response"
	"inkpress/src/app/middleware"
	"inkpress/src/core/ports"
	"inkpress/src/core/usecase"
	"inkpress/src/infra/config"
)

// Deps are the adapters the server's use cases run on.
type Deps struct {
	Posts    ports.PostRepository
	Auth     ports.Authenticator
	Identity ports.IdentityProvider
	AI       ports.AIProvider
	Views    ports.ViewInvalidator
	Events   ports.EventPublisher
	Renderer ports.MarkdownRenderer

	// Components are pinged by /health/detailed, keyed by report name.
	Components map[string]ports.ExternalService
}

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server

	// Handlers
	healthHandler   *handler.HealthHandler
	postHandler     *handler.PostHandler
	aiHandler       *handler.AIHandler
	blogHandler     *handler.BlogHandler
	authHandler     *handler.AuthHandler
	validateHandler *handler.ValidateHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, deps Deps) *Server {
	// Set Gin mode based on log level
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	router := gin.New()

	// Create services
	healthService := usecase.NewHealthService(log, deps.Components)
	postService := usecase.NewPostService(deps.Posts, deps.Auth, deps.Views, deps.Events, log)
	aiService := usecase.NewAIService(deps.AI, deps.Auth, log)
	blogService := usecase.NewBlogService(deps.Posts, deps.Renderer, log)
	authService := usecase.NewAuthService(deps.Identity, log)

	s := &Server{
		cfg:             cfg,
		log:             log,
		router:          router,
		healthHandler:   handler.NewHealthHandler(healthService),
		postHandler:     handler.NewPostHandler(postService),
		aiHandler:       handler.NewAIHandler(aiService, log),
		blogHandler:     handler.NewBlogHandler(blogService, log),
		authHandler:     handler.NewAuthHandler(authService),
		validateHandler: handler.NewValidateHandler(),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Order matters: Recovery should be first to catch all panics
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS(s.cfg.Server.CORSOrigin))
	s.router.Use(middleware.Logging(s.log))
	s.router.Use(middleware.BearerToken())
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check endpoints (no auth required)
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	// Editor AI endpoints
	s.router.POST("/posts/enhance", s.aiHandler.Enhance)
	s.router.POST("/posts/summarize", s.aiHandler.Summarize)

	// Public blog
	s.router.GET("/blog", s.blogHandler.List)
	s.router.GET("/blog/:slug", s.blogHandler.Get)

	// Account
	authGroup := s.router.Group("/auth")
	{
		authGroup.POST("/signup", s.authHandler.SignUp)
		authGroup.POST("/login", s.authHandler.Login)
	}

	// API v1 routes
	v1 := s.router.Group("/v1")
	{
		v1.POST("/validate", s.validateHandler.Validate)

		dashboard := v1.Group("/dashboard")
		dashboard.POST("/slug", s.postHandler.GenerateSlug)

		posts := dashboard.Group("/posts")
		posts.GET("", s.postHandler.List)
		posts.POST("", s.postHandler.Create)
		posts.GET("/:id", s.postHandler.Get)
		posts.PUT("/:id", s.postHandler.Update)
		posts.DELETE("/:id", s.postHandler.Delete)
		posts.PATCH("/:id/status", s.postHandler.UpdateStatus)
	}

	// Handle 404
	s.router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "The requested resource was not found", middleware.GetRequestID(c))
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:              s.cfg.Server.Addr(),
		Handler:           s.router,
		ReadTimeout:       s.cfg.Server.ReadTimeout,
		ReadHeaderTimeout: s.cfg.Server.ReadTimeout,
		WriteTimeout:      s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until shutdown.
// It handles graceful shutdown on SIGINT/SIGTERM.
func (s *Server) Run() error {
	// Channel to receive shutdown signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	// Channel to receive server errors
	errCh := make(chan error, 1)

	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// WaitForReady waits until the server is ready to accept connections.
func (s *Server) WaitForReady(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(fmt.Sprintf("http://%s/health", s.cfg.Server.Addr()))
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("server not ready after %v", timeout)
}
