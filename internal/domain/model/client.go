package model

import (
	"time"

	"github.com/google/uuid"
)

// Client is a registered storefront customer.
type Client struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FullName     string
	Company      string
	Phone        string
	CountryCode  string
	Currency     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProfileUpdate holds editable profile fields.
type ProfileUpdate struct {
	FullName    string
	Company     string
	Phone       string
	CountryCode string
	Currency    string
}
