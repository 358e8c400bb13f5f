package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/clientportal/internal/domain/model"
)

// AccountFacade describes client account capabilities required by handlers.
type AccountFacade interface {
	Register(ctx context.Context, email, password, fullName string) (*model.Client, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.Client, string, error)
	ParseToken(token string) (uuid.UUID, error)
	Profile(ctx context.Context, clientID uuid.UUID) (*model.Client, error)
	UpdateProfile(ctx context.Context, clientID uuid.UUID, update model.ProfileUpdate) (*model.Client, error)
	ChangePassword(ctx context.Context, clientID uuid.UUID, current, next string) error
	NotificationPreferences(ctx context.Context, clientID uuid.UUID) (*model.NotificationPreferences, error)
	UpdateNotificationPreferences(ctx context.Context, prefs model.NotificationPreferences) (*model.NotificationPreferences, error)
	Notifications(ctx context.Context, clientID uuid.UUID) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, clientID uuid.UUID, notificationID int64) error
}

// LocationFacade resolves the caller's location.
type LocationFacade interface {
	DetectLocation(ctx context.Context, ip string) (model.Location, error)
}

// RateFacade serves cached exchange rates.
type RateFacade interface {
	ExchangeRates(ctx context.Context, action string) (model.Rates, error)
}

// EmailFacade sends transactional email.
type EmailFacade interface {
	SendEmail(ctx context.Context, req model.EmailRequest) (model.MailConfigStatus, error)
}

// WebhookFacade applies payment provider events.
type WebhookFacade interface {
	HandleWebhook(ctx context.Context, event model.WebhookEvent) (string, error)
}

// HealthFacade reports readiness of backing services.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// PortalFacade aggregates the full set of operations used across handlers.
type PortalFacade interface {
	AccountFacade
	LocationFacade
	RateFacade
	EmailFacade
	WebhookFacade
	HealthFacade
}
