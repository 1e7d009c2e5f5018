package lock

import (
	"context"
	"log/slog"

	"unify/config"
	"unify/internal/domain/constants"
	"unify/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// LockerParams holds dependencies for PairLocker, injected by Fx
type LockerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewPairLocker creates a PairLocker based on configuration
func NewPairLocker(params LockerParams) (service.PairLocker, error) {
	cfg := params.Config.Merge
	logger := params.Logger

	switch cfg.LockProvider {
	case "", constants.LockProviderMemory:
		logger.Info("Using in-process keyed mutex for pair locking")

		return NewKeyedMutex(cfg.LockAcquireTimeout), nil

	case constants.LockProviderRedis:
		redisCfg := params.Config.Redis
		if redisCfg == nil || redisCfg.Addr == "" {
			return nil, errors.New("redis address is required for redis lock provider")
		}
		logger.Info("Using redis pair locker",
			slog.String("addr", redisCfg.Addr),
			slog.Duration("lockTtl", cfg.LockTTL),
		)

		client := redis.NewClient(&redis.Options{
			Addr:     redisCfg.Addr,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		})

		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					return errors.Wrap(err, "failed to ping redis")
				}

				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		return NewRedisLocker(client, logger, cfg.LockTTL, cfg.LockAcquireTimeout), nil

	default:
		return nil, errors.Errorf("unsupported lock provider: %s", cfg.LockProvider)
	}
}
