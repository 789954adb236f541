package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ridwanfathin/whatsapp-billing/internal/config"
	"github.com/ridwanfathin/whatsapp-billing/internal/middleware"
	"github.com/ridwanfathin/whatsapp-billing/internal/model"
	"github.com/ridwanfathin/whatsapp-billing/internal/session"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// shutdownTimeout bounds how long in-flight requests may finish on shutdown
const shutdownTimeout = 10 * time.Second

// RouteRegistrar is implemented by handlers that mount their own routes
type RouteRegistrar interface {
	RegisterRoutes(router gin.IRouter)
}

// PublicRouteRegistrar is implemented by handlers that also serve routes
// which never touch the invoice. Those routes run without a session.
type PublicRouteRegistrar interface {
	RegisterPublicRoutes(router gin.IRouter)
}

// Server represents the HTTP server of the billing app
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	store      *session.Store
	config     *config.Config
	logger     *zap.Logger
}

// NewServer creates and configures a new server instance. RegisterRoutes
// routes are mounted behind the session middleware, RegisterPublicRoutes
// routes are not.
func NewServer(cfg *config.Config, logger *zap.Logger, store *session.Store, handlers ...RouteRegistrar) *Server {
	gin.SetMode(cfg.GinMode)

	// Create router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins...))
	router.Use(middleware.RequestResponseLogger(middleware.LoggerConfig{
		Logger:    logger,
		SkipPaths: []string{"/health"},
	}))

	// Create server
	server := &Server{
		router: router,
		store:  store,
		config: cfg,
		logger: logger,
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}

	// Configure routes
	server.setupRoutes(handlers)

	return server
}

// GetRouter returns the gin router instance
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// setupRoutes configures all application routes
func (s *Server) setupRoutes(handlers []RouteRegistrar) {
	// Health check endpoint
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, model.HealthResponse{
			Status:   "ok",
			Sessions: s.store.Len(),
		})
	})

	// API documentation endpoints
	// Access the Swagger UI at http://localhost:8080/api-docs/index.html
	swaggerHandler := ginSwagger.WrapHandler(swaggerFiles.Handler)
	s.router.GET("/api-docs/*any", swaggerHandler)

	s.router.GET("/api-docs", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/api-docs/index.html")
	})

	for _, h := range handlers {
		if public, ok := h.(PublicRouteRegistrar); ok {
			public.RegisterPublicRoutes(s.router)
		}
	}

	app := s.router.Group("/")
	app.Use(middleware.Session(middleware.SessionConfig{
		Store:        s.store,
		CookieMaxAge: int(s.config.SessionTTL / time.Second),
		SecureCookie: s.config.SecureCookies,
	}))
	for _, h := range handlers {
		h.RegisterRoutes(app)
	}

	// Anything else is looked up in the static directory, e.g. the bundled logo
	s.router.NoRoute(gin.WrapH(http.FileServer(gin.Dir(s.config.StaticDir, false))))
}

// Start begins listening for requests and handles graceful shutdown
func (s *Server) Start() error {
	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	ctx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	go s.store.Run(ctx)

	serveErr := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		s.logger.Info("server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	select {
	case sig := <-quit:
		s.logger.Info("shutting down server", zap.String("signal", sig.String()))
	case err := <-serveErr:
		return fmt.Errorf("failed to start server: %w", err)
	}

	stopJanitor()
	if err := s.Shutdown(); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.logger.Info("server exited gracefully")
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}
