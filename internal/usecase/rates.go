package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/polkiloo/clientportal/internal/adapter/fxrates"
	domainErrors "github.com/polkiloo/clientportal/internal/domain/errors"
	"github.com/polkiloo/clientportal/internal/domain/model"
	"github.com/polkiloo/clientportal/internal/domain/repository"
	"github.com/polkiloo/clientportal/internal/metrics"
)

// RateUseCase serves USD based exchange rates from the database cache.
type RateUseCase struct {
	rates    repository.RateRepository
	provider fxrates.Client
	logger   *slog.Logger
	now      func() time.Time
}

// NewRateUseCase constructs RateUseCase.
func NewRateUseCase(rates repository.RateRepository, provider fxrates.Client, logger *slog.Logger) *RateUseCase {
	return &RateUseCase{rates: rates, provider: provider, logger: logger, now: time.Now}
}

// ParseRateMode maps the request action onto a mode; empty means get.
func ParseRateMode(action string) (model.RateMode, error) {
	switch model.RateMode(action) {
	case "", model.RateModeGet:
		return model.RateModeGet, nil
	case model.RateModeUpdate:
		return model.RateModeUpdate, nil
	default:
		return "", fmt.Errorf("%w: %q", domainErrors.ErrInvalidRateMode, action)
	}
}

// Rates returns the USD mapping. USD is always present with rate 1.
func (u *RateUseCase) Rates(ctx context.Context, mode model.RateMode) (model.Rates, error) {
	switch mode {
	case model.RateModeGet:
		return u.cached(ctx)
	case model.RateModeUpdate:
		return u.Refresh(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", domainErrors.ErrInvalidRateMode, mode)
	}
}

func (u *RateUseCase) cached(ctx context.Context) (model.Rates, error) {
	stored, err := u.rates.ListByBase(ctx, model.BaseCurrency)
	if err != nil {
		return nil, fmt.Errorf("read rates: %w", err)
	}
	if len(stored) == 0 {
		u.logger.Info("rate cache is empty, refreshing from provider")
		return u.Refresh(ctx)
	}

	result := make(model.Rates, len(stored)+1)
	for _, r := range stored {
		result[r.TargetCurrency] = r.Rate
	}
	result[model.BaseCurrency] = 1
	return result, nil
}

// Refresh fetches provider rates and persists every tracked currency.
// Currencies the provider omits are stored with their static default.
// A failed write is logged and does not stop the remaining currencies.
func (u *RateUseCase) Refresh(ctx context.Context) (model.Rates, error) {
	latest, err := u.provider.Latest(ctx, model.BaseCurrency)
	if err != nil {
		return nil, fmt.Errorf("fetch rates: %w", err)
	}

	now := u.now().UTC()
	result := model.Rates{model.BaseCurrency: 1}
	for _, code := range model.TrackedCurrencies {
		rate, ok := latest[code]
		if !ok || !(rate > 0) || math.IsInf(rate, 0) {
			rate = model.DefaultRates[code]
			metrics.RateFallbacks.WithLabelValues(code).Inc()
		}
		result[code] = rate

		err := u.rates.Upsert(ctx, model.ExchangeRate{
			BaseCurrency:   model.BaseCurrency,
			TargetCurrency: code,
			Rate:           rate,
			LastUpdated:    now,
		})
		if err != nil {
			metrics.RateWrites.WithLabelValues(code, "error").Inc()
			u.logger.Error("failed to store exchange rate",
				slog.String("currency", code),
				slog.String("error", err.Error()),
			)
			continue
		}
		metrics.RateWrites.WithLabelValues(code, "ok").Inc()
	}

	return result, nil
}
