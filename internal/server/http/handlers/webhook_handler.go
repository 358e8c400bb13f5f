package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/clientportal/internal/domain/model"
	"github.com/polkiloo/clientportal/internal/server/http/dto"
)

const (
	invalidPayloadMessage = "Invalid webhook payload"
	webhookFailedMessage  = "Webhook processing failed"
)

// WebhookHandler receives Zoho invoice notifications.
type WebhookHandler struct {
	facade WebhookFacade
}

// NewWebhookHandler constructs WebhookHandler.
func NewWebhookHandler(facade WebhookFacade) *WebhookHandler {
	return &WebhookHandler{facade: facade}
}

// Handle handles POST /api/zoho-webhook. Any failure answers 500 so the
// provider redelivers; error details stay in the request log.
func (h *WebhookHandler) Handle(c *gin.Context) {
	var req dto.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.WebhookResponse{Error: invalidPayloadMessage})
		return
	}

	message, err := h.facade.HandleWebhook(c.Request.Context(), toWebhookEvent(req))
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.WebhookResponse{Error: webhookFailedMessage})
		return
	}

	c.JSON(http.StatusOK, dto.WebhookResponse{Success: true, Message: message})
}

func toWebhookEvent(req dto.WebhookRequest) model.WebhookEvent {
	return model.WebhookEvent{
		Type: req.EventType,
		Kind: model.ParseEventKind(req.EventType),
		Data: model.InvoiceEventData{
			InvoiceID:     string(req.Data.InvoiceID),
			InvoiceNumber: req.Data.InvoiceNumber,
			CustomerID:    string(req.Data.CustomerID),
			Total:         req.Data.Total,
			Status:        model.InvoiceStatus(req.Data.Status),
			PaymentDate:   req.Data.PaymentDate,
		},
	}
}
