package geo

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/clientportal/internal/config"
)

// Module exposes geolocation client to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.GeoAPIURL, p.Logger)
}
