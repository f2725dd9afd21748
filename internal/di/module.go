package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/gymkeeper/internal/adapter/events"
	"github.com/polkiloo/gymkeeper/internal/app"
	"github.com/polkiloo/gymkeeper/internal/config"
	"github.com/polkiloo/gymkeeper/internal/logger"
	"github.com/polkiloo/gymkeeper/internal/pkg/auth"
	"github.com/polkiloo/gymkeeper/internal/server/http/handlers"
	"github.com/polkiloo/gymkeeper/internal/server/http/router"
	"github.com/polkiloo/gymkeeper/internal/storage"
	"github.com/polkiloo/gymkeeper/internal/storage/photos"
	"github.com/polkiloo/gymkeeper/internal/storage/postgres"
	"github.com/polkiloo/gymkeeper/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		storage.Module,
		photos.Module,
		events.Module,
		usecase.Module,
		fx.Provide(
			func(p events.Publisher) usecase.EventPublisher { return p },
			func(s *photos.Store) usecase.PhotoStore { return s },
			func(s *photos.Store) app.PhotoLocator { return s },
			func(s *postgres.Storage) app.HealthChecker { return s },
			func(f *app.GymFacade) handlers.GymFacade { return f },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
