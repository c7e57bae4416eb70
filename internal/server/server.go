// Package server exposes the builder over HTTP: JSON endpoints for builder
// events, the canvas fragment, submission and export downloads.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/goliatone/go-formbuilder/pkg/notify"
	"github.com/goliatone/go-formbuilder/pkg/orchestrator"
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithNotices lets responses report the notice each event posted. The
// center must be the orchestrator's notifier.
func WithNotices(center *notify.Center) Option {
	return func(s *Server) {
		s.notices = center
	}
}

// Server routes HTTP requests to one orchestrator.
type Server struct {
	orch    *orchestrator.Orchestrator
	notices *notify.Center
	logger  *zap.Logger
	engine  *gin.Engine
}

// New builds the router. gin's mode is left to the caller.
func New(orch *orchestrator.Orchestrator, opts ...Option) *Server {
	s := &Server{orch: orch, logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.engine = gin.New()
	s.engine.Use(gin.Recovery(), s.logRequests())
	s.registerRoutes(s.engine)
	return s
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) registerRoutes(r *gin.Engine) {
	r.GET("/", s.Preview)
	r.GET("/canvas", s.Canvas)

	api := r.Group("/api")
	{
		api.GET("/palette", s.Palette)
		api.GET("/fields", s.Fields)
		api.POST("/fields", s.Drop)
		api.PUT("/fields/:id", s.Edit)
		api.DELETE("/fields/:id", s.Delete)
		api.POST("/clear", s.Clear)
		api.POST("/save", s.Save)
		api.POST("/load", s.Load)
		api.POST("/submit", s.Submit)
		api.GET("/notice", s.Notice)
	}

	export := r.Group("/export")
	{
		export.GET("/json", s.ExportJSON)
		export.GET("/yaml", s.ExportYAML)
		export.GET("/html", s.ExportHTML)
	}
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
		)
	}
}
