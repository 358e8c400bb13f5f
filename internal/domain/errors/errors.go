package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password too short")
	ErrInvalidProfile     = errors.New("invalid profile")
	ErrInvalidRateMode    = errors.New("invalid rate mode")
	ErrInvalidEvent       = errors.New("invalid webhook event")
	ErrInvalidEmail       = errors.New("invalid email request")
	ErrMailNotConfigured  = errors.New("mail transport credentials are not configured")
	ErrUpstream           = errors.New("upstream provider failure")
)
