package cache

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"max.ks1230/currconv/internal/entity/currency"
	"max.ks1230/currconv/internal/logger"
)

type redisConfig interface {
	Addr() string
	Password() string
	DB() int
}

// RedisStore keeps the snapshot under a single key without expiry; the
// rates policy decides staleness.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisClient(ctx context.Context, config redisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Addr(),
		Password: config.Password(),
		DB:       config.DB(),
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Error("redis connection failed", zap.String("addr", config.Addr()), zap.Error(err))
		return nil, errors.Wrap(err, "ping redis")
	}
	logger.Info("redis connection successful", zap.String("addr", config.Addr()))
	return rdb, nil
}

func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

func (r *RedisStore) GetSnapshot(ctx context.Context) (*currency.Snapshot, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get snapshot from redis")
	}

	var snapshot currency.Snapshot
	if err = json.Unmarshal(raw, &snapshot); err != nil {
		logger.Warn("dropping corrupted snapshot", zap.String("key", r.key), zap.Error(err))
		_ = r.client.Del(ctx, r.key).Err()
		return nil, nil
	}
	return &snapshot, nil
}

func (r *RedisStore) SaveSnapshot(ctx context.Context, snapshot currency.Snapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return errors.Wrap(err, "marshal snapshot")
	}
	return errors.Wrap(r.client.Set(ctx, r.key, raw, 0).Err(), "save snapshot to redis")
}
