package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/currconv/internal/entity/currency"
	"max.ks1230/currconv/internal/logger"
)

type MemcacheClient struct {
	client *memcache.Client
	key    string
}

type memcachedConfig interface {
	Hosts() []string
	Timeout() time.Duration
}

func NewMemcache(config memcachedConfig, key string) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	if t := config.Timeout(); t > 0 {
		mc.Timeout = t
	}
	return &MemcacheClient{client: mc, key: key}, mc.Ping()
}

func (mc *MemcacheClient) GetSnapshot(_ context.Context) (*currency.Snapshot, error) {
	item, err := mc.client.Get(mc.key)
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get snapshot from memcached")
	}

	var snapshot currency.Snapshot
	if err = json.Unmarshal(item.Value, &snapshot); err != nil {
		logger.Warn("dropping corrupted snapshot", zap.String("key", mc.key), zap.Error(err))
		_ = mc.client.Delete(mc.key)
		return nil, nil
	}
	return &snapshot, nil
}

func (mc *MemcacheClient) SaveSnapshot(_ context.Context, snapshot currency.Snapshot) error {
	logger.Info("cache snapshot", zap.String("key", mc.key), zap.Int64("timestamp", snapshot.Timestamp))
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return errors.Wrap(err, "marshal snapshot")
	}
	return mc.client.Set(&memcache.Item{
		Key:   mc.key,
		Value: raw,
	})
}
