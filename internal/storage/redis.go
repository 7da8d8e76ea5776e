package storage

import (
	"context"
	"errors"
	"fmt"
	"moodtracker/internal/storage/interfaces"
	"moodtracker/internal/structures"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	DriverRedis = "redis"

	defaultRedisPrefix = "mood"
	redisPingTimeout   = 3 * time.Second
)

// RedisStore namespaces every key as "{prefix}:{key}".
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(conf structures.RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", conf.Addr, err)
	}

	prefix := conf.Prefix
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisStore{client: client, prefix: prefix}, nil
}

func (r *RedisStore) key(key string) string {
	return r.prefix + ":" + key
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, r.key(key), value, 0).Err()
}

// SetMany wraps the writes in MULTI/EXEC.
func (r *RedisStore) SetMany(ctx context.Context, entries []interfaces.Entry) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, e := range entries {
			pipe.Set(ctx, r.key(e.Key), e.Value, 0)
		}
		return nil
	})
	return err
}

func (r *RedisStore) Name() string {
	return DriverRedis
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
