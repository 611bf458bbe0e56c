package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	// GetSession returns the user id stored for a session id by the session service.
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	// IncrWithTTL increments a counter and sets its expiry when the key is new.
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

type redis struct {
	client *goredis.Client
}

// NewRepository returns a Redis Repository implementation. A nil client makes every call a miss.
func NewRepository(client *goredis.Client) Repository {
	return &redis{client: client}
}

// ErrUnavailable is returned when no client was configured.
var ErrUnavailable = errors.New("redis client not configured")

func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	if r.client == nil {
		return 0, ErrUnavailable
	}
	return r.client.Get(ctx, "session:"+sessionID).Uint64()
}

func (r *redis) IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	if r.client == nil {
		return 0, ErrUnavailable
	}
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
