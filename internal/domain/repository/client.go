package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/clientportal/internal/domain/model"
)

// ClientRepository describes persistence operations for client accounts.
type ClientRepository interface {
	Create(ctx context.Context, email, passwordHash, fullName string) (*model.Client, error)
	GetByEmail(ctx context.Context, email string) (*model.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Client, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, update model.ProfileUpdate) (*model.Client, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
}
