package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	appservices "github.com/stitchworks/matreq/pkg/application/services"
	"github.com/stitchworks/matreq/pkg/render"
)

// interpretPayload is the interpret request body. Locale must be a locale
// the renderer supports; empty means the fallback locale.
type interpretPayload struct {
	Text       string `json:"text" binding:"required"`
	Locale     string `json:"locale" binding:"omitempty,locale"`
	Department string `json:"department"`
}

type interpretResponse struct {
	DurableID string      `json:"durable_id,omitempty"`
	Request   interface{} `json:"request"`
	Message   string      `json:"message"`
}

// registerLocaleValidation teaches the binding validator the "locale" tag.
func registerLocaleValidation(renderer *render.Renderer) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
			return renderer.Supports(fl.Field().String())
		})
	}
}

// ServeHTTP makes the server usable with httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleInterpret(c *gin.Context) {
	var payload interpretPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.svc.Process(c.Request.Context(), appservices.Input{
		Text:       payload.Text,
		Locale:     payload.Locale,
		Department: payload.Department,
	})
	if err != nil {
		s.log.WithError(err).Error("interpretation pipeline failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, interpretResponse{
		DurableID: result.DurableID,
		Request:   result.Request,
		Message:   result.Message,
	})
}

func (s *Server) handleGet(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}
	req, err := s.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}
	c.JSON(http.StatusOK, req)
}

func (s *Server) handleList(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusOK, gin.H{"requests": []interface{}{}})
		return
	}
	requests, err := s.store.List(c.Request.Context())
	if err != nil {
		s.log.WithError(err).Error("listing requests failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}
