package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/gymkeeper/internal/config"
	"github.com/polkiloo/gymkeeper/internal/domain/repository"
)

var _ repository.Factory = (*Storage)(nil)

// Module provides the PostgreSQL storage and the record repositories it backs.
// The reset marker is chosen by the parent storage module.
var Module = fx.Options(
	fx.Provide(
		newStorage,
		func(s *Storage) repository.Factory { return s },
	),
	fx.Provide(
		func(f repository.Factory) repository.UserRepository { return f.Users() },
		func(f repository.Factory) repository.AdminRepository { return f.Admins() },
		func(f repository.Factory) repository.MemberRepository { return f.Members() },
		func(f repository.Factory) repository.TrainerRepository { return f.Trainers() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	storage, err := New(p.Ctx, p.Config.DatabaseURI, p.Logger)
	if err != nil {
		return nil, err
	}
	p.Logger.Info("postgres storage ready")
	return storage, nil
}

// registerLifecycle closes the pool after every component using it has stopped.
func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			storage.Close()
			return nil
		},
	})
}
