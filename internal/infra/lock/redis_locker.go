package lock

import (
	"context"
	"log/slog"
	"time"

	"unify/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	redisLockKeyPrefix = "unify:merge-lock:"
	redisLockPollDelay = 100 * time.Millisecond
)

// releaseScript deletes the lock only when it still holds our token, so a
// lock that expired and was re-acquired by another instance is never released
// by the original holder.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// redisLocker is a distributed PairLocker backed by SET NX with a TTL.
// Acquisition polls until the configured timeout; the TTL bounds how long a
// crashed holder can block the pair.
type redisLocker struct {
	client         *redis.Client
	logger         *slog.Logger
	lockTTL        time.Duration
	acquireTimeout time.Duration
}

// NewRedisLocker creates a distributed pair locker on top of the given client.
func NewRedisLocker(client *redis.Client, logger *slog.Logger, lockTTL, acquireTimeout time.Duration) service.PairLocker {
	return &redisLocker{
		client:         client,
		logger:         logger,
		lockTTL:        lockTTL,
		acquireTimeout: acquireTimeout,
	}
}

// Acquire polls SET NX until the lock is held, the acquire timeout elapses,
// or ctx ends.
func (l *redisLocker) Acquire(ctx context.Context, a, b uuid.UUID) (func(), error) {
	key := redisLockKeyPrefix + service.PairKey(a, b)
	token := uuid.NewString()

	deadline := time.Now().Add(l.acquireTimeout)
	for {
		ok, err := l.client.SetNX(ctx, key, token, l.lockTTL).Result()
		if err != nil {
			return nil, errors.Wrap(err, "failed to acquire redis pair lock")
		}
		if ok {
			return func() { l.release(key, token) }, nil
		}

		if time.Now().After(deadline) {
			return nil, service.ErrPairLocked
		}

		select {
		case <-time.After(redisLockPollDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func (l *redisLocker) release(key, token string) {
	// Release runs on its own context so a canceled operation still frees the lock.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
		l.logger.Warn("Failed to release redis pair lock",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}
