// Package httpapi is the request layer: it validates inbound payloads,
// invokes the auth service, and maps outcomes to HTTP responses with a
// uniform JSON envelope.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/config"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/revocations"
	"github.com/dmitrijs2005/authkeeper/internal/server/services"
)

type Server struct {
	config      *config.Config
	logger      logging.Logger
	auth        *services.UserService
	revocations revocations.Repository
	validate    *validator.Validate
	router      *gin.Engine
}

func NewServer(cfg *config.Config, l logging.Logger, svc *services.UserService, rev revocations.Repository) *Server {
	s := &Server{
		config:      cfg,
		logger:      l.With("module", "http_server"),
		auth:        svc,
		revocations: rev,
		validate:    newValidator(),
	}
	s.router = s.setupRouter()
	return s
}

func (s *Server) setupRouter() *gin.Engine {
	gin.SetMode(s.config.GinMode)

	router := gin.New()
	router.Use(gin.Logger())

	// No internal failure may escape as a raw transport fault: panics are
	// logged with a stack trace and converted to the generic 500 body.
	router.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		s.logger.Error(c.Request.Context(), "panic recovered",
			"error", fmt.Sprintf("%v", err),
			"stack", string(debug.Stack()),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, newInternalError())
	}))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, s.config.JWTHeaderName)
	if s.config.CORSAllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(s.config.CORSAllowedOrigins, ",")
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", s.handleHealth)

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/create_user", s.createUser)
		authRoutes.POST("/user_login", s.userLogin)
		authRoutes.POST("/user_logout", s.requireToken(), s.userLogout)
	}

	return router
}

// Router exposes the configured engine, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.config.Address, Handler: s.router}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.config.Address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "authkeeper",
		"version": "0.1.0",
	})
}
