package eventlock

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/polkiloo/clientportal/internal/config"
)

// Module provides a Redis backed Locker when REDIS_ADDR is set, a no-op one otherwise.
var Module = fx.Provide(newLocker)

type lockerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle fx.Lifecycle
}

func newLocker(p lockerParams) Locker {
	if p.Config.RedisAddr == "" {
		p.Logger.Info("redis not configured, webhook delivery locks disabled")
		return NoopLocker{}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     p.Config.RedisAddr,
		Password: p.Config.RedisPassword,
	})
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				p.Logger.Warn("redis ping failed", slog.String("error", err.Error()))
			}
			return nil
		},
		OnStop: func(context.Context) error {
			return rdb.Close()
		},
	})
	return NewRedisLocker(rdb, p.Config.EventLockTTL)
}
