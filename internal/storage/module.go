package storage

import (
	"log/slog"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/polkiloo/gymkeeper/internal/domain/repository"
	"github.com/polkiloo/gymkeeper/internal/storage/postgres"
	"github.com/polkiloo/gymkeeper/internal/storage/redis"
)

// Module wires persistence: PostgreSQL for records and the reset marker
// in Redis when a client is configured, PostgreSQL otherwise.
var Module = fx.Options(
	postgres.Module,
	redis.Module,
	fx.Provide(newMarkerRepository),
)

type markerParams struct {
	fx.In

	Storage *postgres.Storage
	Redis   *goredis.Client
	Logger  *slog.Logger
}

func newMarkerRepository(p markerParams) repository.MarkerRepository {
	if p.Redis != nil {
		p.Logger.Info("reset marker stored in redis")
		return redis.NewMarkerStore(p.Redis, redis.DefaultMarkerKey)
	}
	return p.Storage.Marker()
}
