package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/clientportal/internal/server/http/dto"
)

// HealthHandler reports readiness.
type HealthHandler struct {
	facade HealthFacade
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(facade HealthFacade) *HealthHandler {
	return &HealthHandler{facade: facade}
}

// Check handles GET /healthz.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.facade.HealthCheck(c.Request.Context()); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Error: "database unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{OK: true})
}

// Preflight answers bare OPTIONS requests that carry no CORS preflight headers.
func Preflight(c *gin.Context) {
	c.Status(http.StatusOK)
}
