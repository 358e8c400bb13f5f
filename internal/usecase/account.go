package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/clientportal/internal/domain/errors"
	"github.com/polkiloo/clientportal/internal/domain/model"
	"github.com/polkiloo/clientportal/internal/domain/repository"
	pkgAuth "github.com/polkiloo/clientportal/internal/pkg/auth"
)

// MinPasswordLength is enforced on registration and password change.
const MinPasswordLength = 8

// AccountUseCase handles client accounts, profiles and inbox.
type AccountUseCase struct {
	clients       repository.ClientRepository
	notifications repository.NotificationRepository
	hasher        pkgAuth.PasswordHasher
	tokens        pkgAuth.Strategy
}

// NewAccountUseCase constructs AccountUseCase.
func NewAccountUseCase(
	clients repository.ClientRepository,
	notifications repository.NotificationRepository,
	hasher pkgAuth.PasswordHasher,
	strategy pkgAuth.Strategy,
) *AccountUseCase {
	return &AccountUseCase{clients: clients, notifications: notifications, hasher: hasher, tokens: strategy}
}

func normalizeEmail(email string) (string, bool) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", false
	}
	return email, true
}

// Register creates a new client and returns auth token.
func (u *AccountUseCase) Register(ctx context.Context, email, password, fullName string) (*model.Client, string, error) {
	email, ok := normalizeEmail(email)
	if !ok || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}
	if len(password) < MinPasswordLength {
		return nil, "", domainErrors.ErrWeakPassword
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, pkgAuth.ErrPasswordTooLong) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	client, err := u.clients.Create(ctx, email, hash, strings.TrimSpace(fullName))
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(client.ID)
	if err != nil {
		return nil, "", err
	}
	return client, token, nil
}

// Authenticate validates credentials and returns auth token.
func (u *AccountUseCase) Authenticate(ctx context.Context, email, password string) (*model.Client, string, error) {
	email, ok := normalizeEmail(email)
	if !ok || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	client, err := u.clients.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(client.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(client.ID)
	if err != nil {
		return nil, "", err
	}
	return client, token, nil
}

// ParseToken extracts client ID from provided token.
func (u *AccountUseCase) ParseToken(token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// Profile fetches client by identifier.
func (u *AccountUseCase) Profile(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	return u.clients.GetByID(ctx, id)
}

// UpdateProfile validates and stores editable profile fields.
// Country codes are two letters and currencies three, both upper-cased.
func (u *AccountUseCase) UpdateProfile(ctx context.Context, id uuid.UUID, update model.ProfileUpdate) (*model.Client, error) {
	update.FullName = strings.TrimSpace(update.FullName)
	update.Company = strings.TrimSpace(update.Company)
	update.Phone = strings.TrimSpace(update.Phone)
	update.CountryCode = strings.ToUpper(strings.TrimSpace(update.CountryCode))
	update.Currency = strings.ToUpper(strings.TrimSpace(update.Currency))

	if update.FullName == "" {
		return nil, fmt.Errorf("%w: full name is required", domainErrors.ErrInvalidProfile)
	}
	if update.CountryCode != "" && !isLetters(update.CountryCode, 2) {
		return nil, fmt.Errorf("%w: country code must have 2 letters", domainErrors.ErrInvalidProfile)
	}
	if update.Currency == "" {
		update.Currency = model.BaseCurrency
	}
	if !isLetters(update.Currency, 3) {
		return nil, fmt.Errorf("%w: currency must have 3 letters", domainErrors.ErrInvalidProfile)
	}

	return u.clients.UpdateProfile(ctx, id, update)
}

func isLetters(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// ChangePassword replaces the password after verifying the current one.
func (u *AccountUseCase) ChangePassword(ctx context.Context, id uuid.UUID, current, next string) error {
	client, err := u.clients.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.hasher.Compare(client.PasswordHash, current); err != nil {
		return domainErrors.ErrInvalidCredentials
	}
	if len(next) < MinPasswordLength {
		return domainErrors.ErrWeakPassword
	}

	hash, err := u.hasher.Hash(next)
	if err != nil {
		if errors.Is(err, pkgAuth.ErrPasswordTooLong) {
			return domainErrors.ErrWeakPassword
		}
		return err
	}
	return u.clients.UpdatePasswordHash(ctx, id, hash)
}

// NotificationPreferences returns saved preferences or defaults.
func (u *AccountUseCase) NotificationPreferences(ctx context.Context, id uuid.UUID) (*model.NotificationPreferences, error) {
	return u.notifications.GetPreferences(ctx, id)
}

// UpdateNotificationPreferences stores preferences for the client.
func (u *AccountUseCase) UpdateNotificationPreferences(ctx context.Context, prefs model.NotificationPreferences) (*model.NotificationPreferences, error) {
	return u.notifications.UpsertPreferences(ctx, prefs)
}

// Notifications lists the client's inbox newest first.
func (u *AccountUseCase) Notifications(ctx context.Context, id uuid.UUID) ([]model.Notification, error) {
	return u.notifications.ListByClient(ctx, id)
}

// MarkNotificationRead flags an inbox entry owned by the client.
func (u *AccountUseCase) MarkNotificationRead(ctx context.Context, id uuid.UUID, notificationID int64) error {
	return u.notifications.MarkRead(ctx, id, notificationID)
}
