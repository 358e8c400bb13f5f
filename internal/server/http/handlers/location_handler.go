package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/clientportal/internal/server/http/dto"
)

const locationFailedMessage = "Location detection failed, using default location"

// LocationHandler serves client location detection.
type LocationHandler struct {
	facade LocationFacade
}

// NewLocationHandler constructs LocationHandler.
func NewLocationHandler(facade LocationFacade) *LocationHandler {
	return &LocationHandler{facade: facade}
}

// Detect handles GET /api/detect-location. Failures still answer 200 with
// the fallback location so callers always have renderable data.
func (h *LocationHandler) Detect(c *gin.Context) {
	loc, err := h.facade.DetectLocation(c.Request.Context(), c.ClientIP())

	resp := dto.LocationResponse{
		Success: err == nil,
		Data: dto.LocationData{
			CountryCode: loc.CountryCode,
			CountryName: loc.CountryName,
			Currency:    loc.Currency,
			IP:          loc.IP,
			City:        loc.City,
			Region:      loc.Region,
		},
	}
	if err != nil {
		_ = c.Error(err)
		resp.Error = locationFailedMessage
	}
	c.JSON(http.StatusOK, resp)
}
