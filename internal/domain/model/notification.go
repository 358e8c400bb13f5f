package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType is the severity shown in the client inbox.
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// Notification is an append-only inbox entry for a client.
type Notification struct {
	ID        int64
	ClientID  uuid.UUID
	Title     string
	Message   string
	Type      NotificationType
	Read      bool
	CreatedAt time.Time
}

// NotificationPreferences stores per-client delivery choices.
type NotificationPreferences struct {
	ClientID           uuid.UUID
	EmailNotifications bool
	InvoiceReminders   bool
	MarketingEmails    bool
	UpdatedAt          time.Time
}

// DefaultNotificationPreferences applies when a client never saved preferences.
func DefaultNotificationPreferences(clientID uuid.UUID) NotificationPreferences {
	return NotificationPreferences{
		ClientID:           clientID,
		EmailNotifications: true,
		InvoiceReminders:   true,
		MarketingEmails:    false,
	}
}
