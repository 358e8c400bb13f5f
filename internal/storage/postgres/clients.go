package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/polkiloo/clientportal/internal/domain/errors"
	"github.com/polkiloo/clientportal/internal/domain/model"
)

const clientColumns = `id, email, password_hash, full_name, company, phone, country_code, currency, created_at, updated_at`

type clientRepository struct {
	storage *Storage
}

func scanClient(row pgx.Row) (*model.Client, error) {
	var c model.Client
	err := row.Scan(&c.ID, &c.Email, &c.PasswordHash, &c.FullName, &c.Company, &c.Phone, &c.CountryCode, &c.Currency, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *clientRepository) Create(ctx context.Context, email, passwordHash, fullName string) (*model.Client, error) {
	const query = `INSERT INTO clients (email, password_hash, full_name) VALUES ($1, $2, $3)
                   RETURNING ` + clientColumns
	client, err := scanClient(r.storage.pool.QueryRow(ctx, query, email, passwordHash, fullName))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return client, nil
}

func (r *clientRepository) GetByEmail(ctx context.Context, email string) (*model.Client, error) {
	const query = `SELECT ` + clientColumns + ` FROM clients WHERE email=$1`
	return scanClient(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	const query = `SELECT ` + clientColumns + ` FROM clients WHERE id=$1`
	return scanClient(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *clientRepository) UpdateProfile(ctx context.Context, id uuid.UUID, update model.ProfileUpdate) (*model.Client, error) {
	const query = `UPDATE clients
                   SET full_name=$1, company=$2, phone=$3, country_code=$4, currency=$5, updated_at=NOW()
                   WHERE id=$6
                   RETURNING ` + clientColumns
	return scanClient(r.storage.pool.QueryRow(ctx, query,
		update.FullName, update.Company, update.Phone, update.CountryCode, update.Currency, id))
}

func (r *clientRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	const query = `UPDATE clients SET password_hash=$1, updated_at=NOW() WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
