package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/clientportal/internal/domain/model"
)

// NotificationRepository provides access to the client inbox and delivery preferences.
type NotificationRepository interface {
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Notification, error)
	MarkRead(ctx context.Context, clientID uuid.UUID, id int64) error
	GetPreferences(ctx context.Context, clientID uuid.UUID) (*model.NotificationPreferences, error)
	UpsertPreferences(ctx context.Context, prefs model.NotificationPreferences) (*model.NotificationPreferences, error)
}
