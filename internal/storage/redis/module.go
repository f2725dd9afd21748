package redis

import (
	"context"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/polkiloo/gymkeeper/internal/config"
)

// Module provides a Redis client when REDIS_ADDR is configured and nil otherwise.
var Module = fx.Options(
	fx.Provide(newClient),
	fx.Invoke(registerLifecycle),
)

type clientParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

var connect = NewClient

func newClient(p clientParams) (*goredis.Client, error) {
	if p.Config.RedisAddr == "" {
		return nil, nil
	}
	client, err := connect(p.Ctx, Options{
		Addr:     p.Config.RedisAddr,
		Password: p.Config.RedisPassword,
		DB:       p.Config.RedisDB,
	})
	if err != nil {
		return nil, err
	}
	p.Logger.Info("redis connected", slog.String("addr", p.Config.RedisAddr))
	return client, nil
}

func registerLifecycle(lc fx.Lifecycle, client *goredis.Client) {
	if client == nil {
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
}
