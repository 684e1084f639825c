package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/crime_file_system/internal/service"
)

// RedisSlot хранит снимок коллекции под одним ключом Redis без срока жизни
type RedisSlot struct {
	redisClient *redis.Client
	key         string
}

func NewRedisSlot(redisClient *redis.Client, key string) service.SnapshotRepository {
	return &RedisSlot{
		redisClient: redisClient,
		key:         key,
	}
}

func (r *RedisSlot) Load(ctx context.Context) ([]byte, error) {
	val, err := r.redisClient.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load snapshot from redis: %w", err)
	}
	return val, nil
}

func (r *RedisSlot) Save(ctx context.Context, payload []byte) error {
	if err := r.redisClient.Set(ctx, r.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot to redis: %w", err)
	}
	return nil
}
