package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/clientportal/internal/domain/errors"
	"github.com/polkiloo/clientportal/internal/domain/model"
	"github.com/polkiloo/clientportal/internal/server/http/dto"
)

const (
	invalidRateActionMessage = "Invalid action. Use 'get' or 'update'"
	ratesFailedMessage       = "Failed to fetch exchange rates"
)

// RatesHandler serves the exchange rate cache.
type RatesHandler struct {
	facade RateFacade
}

// NewRatesHandler constructs RatesHandler.
func NewRatesHandler(facade RateFacade) *RatesHandler {
	return &RatesHandler{facade: facade}
}

// Rates handles GET /api/exchange-rates?action=get|update.
func (h *RatesHandler) Rates(c *gin.Context) {
	rates, err := h.facade.ExchangeRates(c.Request.Context(), c.Query("action"))
	if err != nil {
		status, message := http.StatusInternalServerError, ratesFailedMessage
		if errors.Is(err, domainErrors.ErrInvalidRateMode) {
			status, message = http.StatusBadRequest, invalidRateActionMessage
		}
		_ = c.Error(err)
		c.JSON(status, dto.RatesResponse{
			Success:       false,
			Error:         message,
			FallbackRates: model.FallbackRates(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.RatesResponse{Success: true, Rates: rates})
}
