package stash

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Redis backs the blob port with a Redis instance, for deployments
// running more than one storefront process.
type Redis struct {
	conn *redis.Client
}

func NewRedis(addr string) *Redis {
	return &Redis{conn: redis.NewClient(&redis.Options{Addr: addr})}
}

func (r *Redis) Load(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.conn.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (r *Redis) Save(ctx context.Context, key string, data []byte) error {
	return r.conn.Set(ctx, key, data, 0).Err()
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.conn.Del(ctx, key).Err()
}
