package locks

import (
	"context"
	"errors"
	"time"

	"foodies/internal/core/ports"
	"foodies/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

var errLockBusy = errors.New("lock is held")

const (
	DefaultLockTTL   = 15 * time.Second
	defaultKeyPrefix = "foodies:lock:"
)

// RedisLocker is a ports.Locker shared by every instance of the service.
// A lock expires after ttl if its holder dies without unlocking.
type RedisLocker struct {
	client redis.Cmdable
	log    *zap.Logger
	ttl    time.Duration
	prefix string
}

func NewRedisLocker(client redis.Cmdable, log *zap.Logger, ttl time.Duration) *RedisLocker {
	if log == nil {
		log = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = DefaultLockTTL
	}
	return &RedisLocker{
		client: client,
		log:    log.Named("locks"),
		ttl:    ttl,
		prefix: defaultKeyPrefix,
	}
}

// Lock polls SET NX PX with exponential backoff until it wins or ctx is done.
func (l *RedisLocker) Lock(ctx context.Context, key string) (ports.Unlock, error) {
	redisKey := l.prefix + key
	token := uuid.NewString()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 5 * time.Millisecond
	b.MaxInterval = 100 * time.Millisecond
	b.MaxElapsedTime = 0

	err := backoff.Retry(func() error {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return backoff.Permanent(errs.NewStorageUnavailableError("acquire lock "+key, err))
		}
		if !ok {
			return errLockBusy
		}
		return nil
	}, backoff.WithContext(b, ctx))
	if err != nil {
		if errors.Is(err, errLockBusy) && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}

	released := false
	return func() {
		if released {
			return
		}
		released = true

		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(releaseCtx, l.client, []string{redisKey}, token).Err(); err != nil {
			l.log.Warn("lock release failed", zap.String("key", key), zap.Error(err))
		}
	}, nil
}
