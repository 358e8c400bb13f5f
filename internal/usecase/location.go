package usecase

import (
	"context"
	"log/slog"

	"github.com/polkiloo/clientportal/internal/adapter/geo"
	"github.com/polkiloo/clientportal/internal/domain/model"
)

// LocationUseCase resolves client IPs to country and currency.
type LocationUseCase struct {
	geo    geo.Client
	logger *slog.Logger
}

// NewLocationUseCase constructs LocationUseCase.
func NewLocationUseCase(client geo.Client, logger *slog.Logger) *LocationUseCase {
	return &LocationUseCase{geo: client, logger: logger}
}

// Detect always returns a usable location. On lookup failure it returns the
// US fallback together with the error.
func (u *LocationUseCase) Detect(ctx context.Context, ip string) (model.Location, error) {
	loc, err := u.geo.Lookup(ctx, ip)
	if err != nil {
		u.logger.Warn("location lookup failed, using fallback",
			slog.String("ip", ip),
			slog.String("error", err.Error()),
		)
		return model.FallbackLocation(ip), err
	}
	if loc.IP == "" {
		loc.IP = ip
	}
	if loc.Currency == "" {
		loc.Currency = model.BaseCurrency
	}
	return loc, nil
}
