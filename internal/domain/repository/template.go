package repository

import (
	"context"

	"github.com/polkiloo/clientportal/internal/domain/model"
)

// TemplateRepository reads stored email templates.
type TemplateRepository interface {
	GetByName(ctx context.Context, name string) (*model.EmailTemplate, error)
}
