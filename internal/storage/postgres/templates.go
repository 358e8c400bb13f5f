package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/clientportal/internal/domain/errors"
	"github.com/polkiloo/clientportal/internal/domain/model"
)

type templateRepository struct {
	storage *Storage
}

func (r *templateRepository) GetByName(ctx context.Context, name string) (*model.EmailTemplate, error) {
	const query = `SELECT name, subject, html FROM email_templates WHERE name=$1`
	var t model.EmailTemplate
	err := r.storage.pool.QueryRow(ctx, query, name).Scan(&t.Name, &t.Subject, &t.HTML)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}
