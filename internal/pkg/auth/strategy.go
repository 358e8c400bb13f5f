package auth

import (
	"time"

	"github.com/google/uuid"
)

// Strategy issues and verifies client session tokens.
type Strategy interface {
	IssueToken(clientID uuid.UUID) (string, error)
	ParseToken(token string) (uuid.UUID, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
