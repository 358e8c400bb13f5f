package repository

import (
	"context"

	"github.com/polkiloo/clientportal/internal/domain/model"
)

// RateRepository persists exchange rates keyed by currency pair.
type RateRepository interface {
	ListByBase(ctx context.Context, base string) ([]model.ExchangeRate, error)
	Upsert(ctx context.Context, rate model.ExchangeRate) error
}
