package test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/clientportal/internal/domain/model"
)

// PortalFacadeStub provides controllable behaviour for every portal endpoint.
// Unset functions fall back to canned successful responses.
type PortalFacadeStub struct {
	RegisterFn          func(context.Context, string, string, string) (*model.Client, string, error)
	AuthenticateFn      func(context.Context, string, string) (*model.Client, string, error)
	ParseTokenFn        func(string) (uuid.UUID, error)
	ProfileFn           func(context.Context, uuid.UUID) (*model.Client, error)
	UpdateProfileFn     func(context.Context, uuid.UUID, model.ProfileUpdate) (*model.Client, error)
	ChangePasswordFn    func(context.Context, uuid.UUID, string, string) error
	PreferencesFn       func(context.Context, uuid.UUID) (*model.NotificationPreferences, error)
	UpdatePreferencesFn func(context.Context, model.NotificationPreferences) (*model.NotificationPreferences, error)
	NotificationsFn     func(context.Context, uuid.UUID) ([]model.Notification, error)
	MarkReadFn          func(context.Context, uuid.UUID, int64) error

	DetectLocationFn func(context.Context, string) (model.Location, error)
	ExchangeRatesFn  func(context.Context, string) (model.Rates, error)
	RefreshRatesFn   func(context.Context) (model.Rates, error)
	SendEmailFn      func(context.Context, model.EmailRequest) (model.MailConfigStatus, error)
	HandleWebhookFn  func(context.Context, model.WebhookEvent) (string, error)
	HealthCheckFn    func(context.Context) error

	mu           sync.Mutex
	refreshCalls int
}

// StubClient is returned by account methods without overrides.
func StubClient(id uuid.UUID) *model.Client {
	return &model.Client{
		ID:        id,
		Email:     "client@example.com",
		FullName:  "Test Client",
		Currency:  model.BaseCurrency,
		CreatedAt: time.Unix(0, 0).UTC(),
		UpdatedAt: time.Unix(0, 0).UTC(),
	}
}

// Register delegates to RegisterFn or issues "token".
func (s *PortalFacadeStub) Register(ctx context.Context, email, password, fullName string) (*model.Client, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password, fullName)
	}
	client := StubClient(uuid.New())
	client.Email = email
	client.FullName = fullName
	return client, "token", nil
}

// Authenticate delegates to AuthenticateFn or issues "token".
func (s *PortalFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.Client, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	client := StubClient(uuid.New())
	client.Email = email
	return client, "token", nil
}

// ParseToken delegates to ParseTokenFn or returns a fresh id.
func (s *PortalFacadeStub) ParseToken(token string) (uuid.UUID, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return uuid.New(), nil
}

// Profile delegates to ProfileFn or returns StubClient.
func (s *PortalFacadeStub) Profile(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, id)
	}
	return StubClient(id), nil
}

// UpdateProfile delegates to UpdateProfileFn or echoes the update.
func (s *PortalFacadeStub) UpdateProfile(ctx context.Context, id uuid.UUID, update model.ProfileUpdate) (*model.Client, error) {
	if s.UpdateProfileFn != nil {
		return s.UpdateProfileFn(ctx, id, update)
	}
	client := StubClient(id)
	client.FullName = update.FullName
	client.Company = update.Company
	client.Phone = update.Phone
	client.CountryCode = update.CountryCode
	client.Currency = update.Currency
	return client, nil
}

// ChangePassword delegates to ChangePasswordFn.
func (s *PortalFacadeStub) ChangePassword(ctx context.Context, id uuid.UUID, current, next string) error {
	if s.ChangePasswordFn != nil {
		return s.ChangePasswordFn(ctx, id, current, next)
	}
	return nil
}

// NotificationPreferences delegates to PreferencesFn or returns defaults.
func (s *PortalFacadeStub) NotificationPreferences(ctx context.Context, id uuid.UUID) (*model.NotificationPreferences, error) {
	if s.PreferencesFn != nil {
		return s.PreferencesFn(ctx, id)
	}
	prefs := model.DefaultNotificationPreferences(id)
	return &prefs, nil
}

// UpdateNotificationPreferences delegates to UpdatePreferencesFn or echoes prefs.
func (s *PortalFacadeStub) UpdateNotificationPreferences(ctx context.Context, prefs model.NotificationPreferences) (*model.NotificationPreferences, error) {
	if s.UpdatePreferencesFn != nil {
		return s.UpdatePreferencesFn(ctx, prefs)
	}
	return &prefs, nil
}

// Notifications delegates to NotificationsFn or returns an empty inbox.
func (s *PortalFacadeStub) Notifications(ctx context.Context, id uuid.UUID) ([]model.Notification, error) {
	if s.NotificationsFn != nil {
		return s.NotificationsFn(ctx, id)
	}
	return nil, nil
}

// MarkNotificationRead delegates to MarkReadFn.
func (s *PortalFacadeStub) MarkNotificationRead(ctx context.Context, id uuid.UUID, notificationID int64) error {
	if s.MarkReadFn != nil {
		return s.MarkReadFn(ctx, id, notificationID)
	}
	return nil
}

// DetectLocation delegates to DetectLocationFn or returns the fallback.
func (s *PortalFacadeStub) DetectLocation(ctx context.Context, ip string) (model.Location, error) {
	if s.DetectLocationFn != nil {
		return s.DetectLocationFn(ctx, ip)
	}
	return model.FallbackLocation(ip), nil
}

// ExchangeRates delegates to ExchangeRatesFn or returns fallback rates.
func (s *PortalFacadeStub) ExchangeRates(ctx context.Context, action string) (model.Rates, error) {
	if s.ExchangeRatesFn != nil {
		return s.ExchangeRatesFn(ctx, action)
	}
	return model.FallbackRates(), nil
}

// RefreshRates counts invocations and delegates to RefreshRatesFn.
func (s *PortalFacadeStub) RefreshRates(ctx context.Context) (model.Rates, error) {
	s.mu.Lock()
	s.refreshCalls++
	s.mu.Unlock()
	if s.RefreshRatesFn != nil {
		return s.RefreshRatesFn(ctx)
	}
	return model.FallbackRates(), nil
}

// RefreshCalls reports how many times RefreshRates ran.
func (s *PortalFacadeStub) RefreshCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshCalls
}

// SendEmail delegates to SendEmailFn or reports a configured transport.
func (s *PortalFacadeStub) SendEmail(ctx context.Context, req model.EmailRequest) (model.MailConfigStatus, error) {
	if s.SendEmailFn != nil {
		return s.SendEmailFn(ctx, req)
	}
	return model.MailConfigStatus{UserConfigured: true, PasswordConfigured: true}, nil
}

// HandleWebhook delegates to HandleWebhookFn or acknowledges the event.
func (s *PortalFacadeStub) HandleWebhook(ctx context.Context, event model.WebhookEvent) (string, error) {
	if s.HandleWebhookFn != nil {
		return s.HandleWebhookFn(ctx, event)
	}
	return "Webhook processed successfully", nil
}

// HealthCheck delegates to HealthCheckFn.
func (s *PortalFacadeStub) HealthCheck(ctx context.Context) error {
	if s.HealthCheckFn != nil {
		return s.HealthCheckFn(ctx)
	}
	return nil
}
