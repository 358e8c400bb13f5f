package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/clientportal/internal/domain/model"
	"github.com/polkiloo/clientportal/internal/usecase"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type PortalFacade struct {
	accounts  *usecase.AccountUseCase
	rates     *usecase.RateUseCase
	webhooks  *usecase.WebhookUseCase
	locations *usecase.LocationUseCase
	emails    *usecase.EmailUseCase
	health    HealthChecker
}

func NewPortalFacade(
	accounts *usecase.AccountUseCase,
	rates *usecase.RateUseCase,
	webhooks *usecase.WebhookUseCase,
	locations *usecase.LocationUseCase,
	emails *usecase.EmailUseCase,
	health HealthChecker,
) *PortalFacade {
	return &PortalFacade{
		accounts:  accounts,
		rates:     rates,
		webhooks:  webhooks,
		locations: locations,
		emails:    emails,
		health:    health,
	}
}

func (f *PortalFacade) Register(ctx context.Context, email, password, fullName string) (*model.Client, string, error) {
	return f.accounts.Register(ctx, email, password, fullName)
}

func (f *PortalFacade) Authenticate(ctx context.Context, email, password string) (*model.Client, string, error) {
	return f.accounts.Authenticate(ctx, email, password)
}

func (f *PortalFacade) ParseToken(token string) (uuid.UUID, error) {
	return f.accounts.ParseToken(token)
}

func (f *PortalFacade) Profile(ctx context.Context, clientID uuid.UUID) (*model.Client, error) {
	return f.accounts.Profile(ctx, clientID)
}

func (f *PortalFacade) UpdateProfile(ctx context.Context, clientID uuid.UUID, update model.ProfileUpdate) (*model.Client, error) {
	return f.accounts.UpdateProfile(ctx, clientID, update)
}

func (f *PortalFacade) ChangePassword(ctx context.Context, clientID uuid.UUID, current, next string) error {
	return f.accounts.ChangePassword(ctx, clientID, current, next)
}

func (f *PortalFacade) NotificationPreferences(ctx context.Context, clientID uuid.UUID) (*model.NotificationPreferences, error) {
	return f.accounts.NotificationPreferences(ctx, clientID)
}

func (f *PortalFacade) UpdateNotificationPreferences(ctx context.Context, prefs model.NotificationPreferences) (*model.NotificationPreferences, error) {
	return f.accounts.UpdateNotificationPreferences(ctx, prefs)
}

func (f *PortalFacade) Notifications(ctx context.Context, clientID uuid.UUID) ([]model.Notification, error) {
	return f.accounts.Notifications(ctx, clientID)
}

func (f *PortalFacade) MarkNotificationRead(ctx context.Context, clientID uuid.UUID, notificationID int64) error {
	return f.accounts.MarkNotificationRead(ctx, clientID, notificationID)
}

func (f *PortalFacade) DetectLocation(ctx context.Context, ip string) (model.Location, error) {
	return f.locations.Detect(ctx, ip)
}

// ExchangeRates resolves the request action and serves rates accordingly.
func (f *PortalFacade) ExchangeRates(ctx context.Context, action string) (model.Rates, error) {
	mode, err := usecase.ParseRateMode(action)
	if err != nil {
		return nil, err
	}
	return f.rates.Rates(ctx, mode)
}

func (f *PortalFacade) RefreshRates(ctx context.Context) (model.Rates, error) {
	return f.rates.Refresh(ctx)
}

func (f *PortalFacade) SendEmail(ctx context.Context, req model.EmailRequest) (model.MailConfigStatus, error) {
	return f.emails.Send(ctx, req)
}

func (f *PortalFacade) HandleWebhook(ctx context.Context, event model.WebhookEvent) (string, error) {
	return f.webhooks.Handle(ctx, event)
}

func (f *PortalFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
