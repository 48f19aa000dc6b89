// Package httpapi exposes the interpreter over HTTP. It is thin I/O glue:
// all decisions happen in the application and domain layers.
package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	appservices "github.com/stitchworks/matreq/pkg/application/services"
	"github.com/stitchworks/matreq/pkg/domain/repositories"
	"github.com/stitchworks/matreq/pkg/render"
)

// Server hosts the material-request HTTP API.
type Server struct {
	engine *gin.Engine
	svc    *appservices.RequestService
	store  repositories.RequestStore
	log    *logrus.Logger
}

// NewServer builds the router. The renderer is needed to validate locale
// tags on incoming payloads.
func NewServer(svc *appservices.RequestService, store repositories.RequestStore, renderer *render.Renderer, log *logrus.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{engine: engine, svc: svc, store: store, log: log}
	engine.Use(s.requestLogger())

	registerLocaleValidation(renderer)

	engine.GET("/healthz", s.handleHealth)
	v1 := engine.Group("/api/v1")
	{
		v1.POST("/requests/interpret", s.handleInterpret)
		v1.GET("/requests", s.handleList)
		v1.GET("/requests/:id", s.handleGet)
	}
	return s
}

// Run serves the API on addr until the listener fails.
func (s *Server) Run(addr string) error {
	s.log.WithField("addr", addr).Info("http api listening")
	return s.engine.Run(addr)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Info("request handled")
	}
}
