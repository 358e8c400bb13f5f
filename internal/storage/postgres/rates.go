package postgres

import (
	"context"

	"github.com/polkiloo/clientportal/internal/domain/model"
)

type rateRepository struct {
	storage *Storage
}

func (r *rateRepository) ListByBase(ctx context.Context, base string) ([]model.ExchangeRate, error) {
	const query = `SELECT base_currency, target_currency, rate, last_updated
                   FROM exchange_rates WHERE base_currency=$1 ORDER BY target_currency`
	rows, err := r.storage.pool.Query(ctx, query, base)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ExchangeRate
	for rows.Next() {
		var rate model.ExchangeRate
		if err := rows.Scan(&rate.BaseCurrency, &rate.TargetCurrency, &rate.Rate, &rate.LastUpdated); err != nil {
			return nil, err
		}
		result = append(result, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Upsert stores the rate for its currency pair, last write wins.
func (r *rateRepository) Upsert(ctx context.Context, rate model.ExchangeRate) error {
	const query = `INSERT INTO exchange_rates (base_currency, target_currency, rate, last_updated)
                   VALUES ($1, $2, $3, $4)
                   ON CONFLICT (base_currency, target_currency)
                   DO UPDATE SET rate = EXCLUDED.rate, last_updated = EXCLUDED.last_updated`
	_, err := r.storage.pool.Exec(ctx, query, rate.BaseCurrency, rate.TargetCurrency, rate.Rate, rate.LastUpdated)
	return err
}
