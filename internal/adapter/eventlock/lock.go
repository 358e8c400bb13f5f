package eventlock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "portal:webhook:"

// releaseScript deletes the key only while it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker serializes processing of the same webhook delivery across instances.
type Locker interface {
	// Acquire returns acquired=false when another holder owns key. release is never nil.
	Acquire(ctx context.Context, key string) (release func(), acquired bool, err error)
}

type redisClient interface {
	redis.Scripter
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

// RedisLocker takes short lived locks with SET NX. Each lock stores a random token
// so a delivery whose lock expired cannot release the next holder's lock.
type RedisLocker struct {
	rdb redisClient
	ttl time.Duration
}

// NewRedisLocker creates locker whose locks expire after ttl.
func NewRedisLocker(rdb redisClient, ttl time.Duration) *RedisLocker {
	return &RedisLocker{rdb: rdb, ttl: ttl}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), bool, error) {
	full := keyPrefix + key
	token := uuid.NewString()
	ok, err := l.rdb.SetNX(ctx, full, token, l.ttl).Result()
	if err != nil {
		return noop, false, err
	}
	if !ok {
		return noop, false, nil
	}
	return func() {
		_ = releaseScript.Run(context.WithoutCancel(ctx), l.rdb, []string{full}, token).Err()
	}, true, nil
}

// NoopLocker always grants the lock.
type NoopLocker struct{}

func (NoopLocker) Acquire(context.Context, string) (func(), bool, error) {
	return noop, true, nil
}

func noop() {}
