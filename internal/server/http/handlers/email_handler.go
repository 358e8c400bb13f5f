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
	emailSentMessage   = "Email sent successfully"
	emailFailedMessage = "Failed to send email"
)

// EmailHandler sends transactional email.
type EmailHandler struct {
	facade EmailFacade
}

// NewEmailHandler constructs EmailHandler.
func NewEmailHandler(facade EmailFacade) *EmailHandler {
	return &EmailHandler{facade: facade}
}

// Send handles POST /api/send-email.
func (h *EmailHandler) Send(c *gin.Context) {
	var req dto.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.SendEmailResponse{
			Error:   emailFailedMessage,
			Details: "invalid request body",
		})
		return
	}

	status, err := h.facade.SendEmail(c.Request.Context(), model.EmailRequest{
		To:        req.To,
		Subject:   req.Subject,
		HTML:      req.HTML,
		Template:  req.Template,
		Variables: req.Variables,
	})
	configStatus := &dto.MailConfigStatus{
		UserConfigured:     status.UserConfigured,
		PasswordConfigured: status.PasswordConfigured,
	}
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, domainErrors.ErrInvalidEmail) {
			code = http.StatusBadRequest
		}
		_ = c.Error(err)
		c.JSON(code, dto.SendEmailResponse{
			Error:        emailFailedMessage,
			Details:      err.Error(),
			ConfigStatus: configStatus,
		})
		return
	}

	c.JSON(http.StatusOK, dto.SendEmailResponse{
		Success:      true,
		Message:      emailSentMessage,
		ConfigStatus: configStatus,
	})
}
