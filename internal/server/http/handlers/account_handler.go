package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/clientportal/internal/domain/errors"
	"github.com/polkiloo/clientportal/internal/domain/model"
	"github.com/polkiloo/clientportal/internal/server/http/dto"
	"github.com/polkiloo/clientportal/internal/server/http/middleware"
)

// AccountHandler processes registration, login and client self-service.
type AccountHandler struct {
	facade AccountFacade
}

// NewAccountHandler creates AccountHandler instance.
func NewAccountHandler(facade AccountFacade) *AccountHandler {
	return &AccountHandler{facade: facade}
}

// Register handles POST /api/client/register.
func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	client, token, err := h.facade.Register(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials), errors.Is(err, domainErrors.ErrWeakPassword):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			_ = c.Error(err)
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, Client: toClientResponse(client)})
}

// Login handles POST /api/client/login.
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	client, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.Status(http.StatusUnauthorized)
		default:
			_ = c.Error(err)
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, Client: toClientResponse(client)})
}

// Profile handles GET /api/client/profile.
func (h *AccountHandler) Profile(c *gin.Context) {
	client, err := h.facade.Profile(c.Request.Context(), CurrentClientID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toClientResponse(client))
}

// UpdateProfile handles PUT /api/client/profile.
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var req dto.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	client, err := h.facade.UpdateProfile(c.Request.Context(), CurrentClientID(c), model.ProfileUpdate{
		FullName:    req.FullName,
		Company:     req.Company,
		Phone:       req.Phone,
		CountryCode: req.CountryCode,
		Currency:    req.Currency,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toClientResponse(client))
}

// ChangePassword handles PUT /api/client/password.
func (h *AccountHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.facade.ChangePassword(c.Request.Context(), CurrentClientID(c), req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrWeakPassword):
			c.Status(http.StatusBadRequest)
		default:
			h.fail(c, err)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// Preferences handles GET /api/client/notification-preferences.
func (h *AccountHandler) Preferences(c *gin.Context) {
	prefs, err := h.facade.NotificationPreferences(c.Request.Context(), CurrentClientID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toPreferencesResponse(prefs))
}

// UpdatePreferences handles PUT /api/client/notification-preferences.
func (h *AccountHandler) UpdatePreferences(c *gin.Context) {
	var req dto.NotificationPreferences
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	prefs, err := h.facade.UpdateNotificationPreferences(c.Request.Context(), model.NotificationPreferences{
		ClientID:           CurrentClientID(c),
		EmailNotifications: req.EmailNotifications,
		InvoiceReminders:   req.InvoiceReminders,
		MarketingEmails:    req.MarketingEmails,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toPreferencesResponse(prefs))
}

// Notifications handles GET /api/client/notifications.
func (h *AccountHandler) Notifications(c *gin.Context) {
	items, err := h.facade.Notifications(c.Request.Context(), CurrentClientID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	if len(items) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.NotificationResponse, 0, len(items))
	for _, n := range items {
		resp = append(resp, dto.NotificationResponse{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Type:      string(n.Type),
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// MarkNotificationRead handles POST /api/client/notifications/:id/read.
func (h *AccountHandler) MarkNotificationRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.MarkNotificationRead(c.Request.Context(), CurrentClientID(c), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AccountHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrInvalidProfile):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.Status(http.StatusInternalServerError)
	}
}

func toClientResponse(client *model.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:          client.ID,
		Email:       client.Email,
		FullName:    client.FullName,
		Company:     client.Company,
		Phone:       client.Phone,
		CountryCode: client.CountryCode,
		Currency:    client.Currency,
		CreatedAt:   client.CreatedAt,
		UpdatedAt:   client.UpdatedAt,
	}
}

func toPreferencesResponse(prefs *model.NotificationPreferences) dto.NotificationPreferences {
	resp := dto.NotificationPreferences{
		EmailNotifications: prefs.EmailNotifications,
		InvoiceReminders:   prefs.InvoiceReminders,
		MarketingEmails:    prefs.MarketingEmails,
	}
	if !prefs.UpdatedAt.IsZero() {
		updated := prefs.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp
}
