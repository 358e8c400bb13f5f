package dto

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest describes sign-up payload.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// LoginRequest describes email/password payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned after successful sign-up or login.
type AuthResponse struct {
	Token  string         `json:"token"`
	Client ClientResponse `json:"client"`
}

// ClientResponse is the public view of a client profile.
type ClientResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	Company     string    `json:"company"`
	Phone       string    `json:"phone"`
	CountryCode string    `json:"country_code"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProfileRequest carries editable profile fields.
type ProfileRequest struct {
	FullName    string `json:"full_name"`
	Company     string `json:"company"`
	Phone       string `json:"phone"`
	CountryCode string `json:"country_code"`
	Currency    string `json:"currency"`
}

// ChangePasswordRequest describes password change payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// NotificationPreferences is used for both reading and saving preferences.
type NotificationPreferences struct {
	EmailNotifications bool       `json:"email_notifications"`
	InvoiceReminders   bool       `json:"invoice_reminders"`
	MarketingEmails    bool       `json:"marketing_emails"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

// NotificationResponse describes an inbox entry.
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
