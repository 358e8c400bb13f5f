package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/clientportal/internal/adapter/eventlock"
	"github.com/polkiloo/clientportal/internal/adapter/fxrates"
	"github.com/polkiloo/clientportal/internal/adapter/geo"
	mailer "github.com/polkiloo/clientportal/internal/adapter/mail"
	"github.com/polkiloo/clientportal/internal/app"
	"github.com/polkiloo/clientportal/internal/config"
	"github.com/polkiloo/clientportal/internal/logger"
	"github.com/polkiloo/clientportal/internal/pkg/auth"
	"github.com/polkiloo/clientportal/internal/server/http/handlers"
	"github.com/polkiloo/clientportal/internal/server/http/router"
	"github.com/polkiloo/clientportal/internal/storage/postgres"
	"github.com/polkiloo/clientportal/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		fxrates.Module,
		geo.Module,
		mailer.Module,
		eventlock.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		fx.Provide(func(f *app.PortalFacade) handlers.PortalFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
