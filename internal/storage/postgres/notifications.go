package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/clientportal/internal/domain/errors"
	"github.com/polkiloo/clientportal/internal/domain/model"
)

type notificationRepository struct {
	storage *Storage
}

func (r *notificationRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Notification, error) {
	const query = `SELECT id, client_id, title, message, type, read, created_at
                   FROM notifications WHERE client_id=$1 ORDER BY created_at DESC, id DESC`
	rows, err := r.storage.pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.ClientID, &n.Title, &n.Message, &n.Type, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, clientID uuid.UUID, id int64) error {
	const query = `UPDATE notifications SET read=TRUE WHERE id=$1 AND client_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, id, clientID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// GetPreferences falls back to defaults for clients that never saved preferences.
func (r *notificationRepository) GetPreferences(ctx context.Context, clientID uuid.UUID) (*model.NotificationPreferences, error) {
	const query = `SELECT client_id, email_notifications, invoice_reminders, marketing_emails, updated_at
                   FROM notification_preferences WHERE client_id=$1`
	var p model.NotificationPreferences
	err := r.storage.pool.QueryRow(ctx, query, clientID).Scan(
		&p.ClientID, &p.EmailNotifications, &p.InvoiceReminders, &p.MarketingEmails, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			defaults := model.DefaultNotificationPreferences(clientID)
			return &defaults, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *notificationRepository) UpsertPreferences(ctx context.Context, prefs model.NotificationPreferences) (*model.NotificationPreferences, error) {
	const query = `INSERT INTO notification_preferences (client_id, email_notifications, invoice_reminders, marketing_emails)
                   VALUES ($1, $2, $3, $4)
                   ON CONFLICT (client_id) DO UPDATE
                   SET email_notifications = EXCLUDED.email_notifications,
                       invoice_reminders = EXCLUDED.invoice_reminders,
                       marketing_emails = EXCLUDED.marketing_emails,
                       updated_at = NOW()
                   RETURNING updated_at`
	saved := prefs
	err := r.storage.pool.QueryRow(ctx, query,
		prefs.ClientID, prefs.EmailNotifications, prefs.InvoiceReminders, prefs.MarketingEmails,
	).Scan(&saved.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
