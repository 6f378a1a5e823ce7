package app

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/currconv/internal/clients/cache"
	"max.ks1230/currconv/internal/clients/kafka"
	"max.ks1230/currconv/internal/clients/oxr"
	"max.ks1230/currconv/internal/config"
	"max.ks1230/currconv/internal/entity/currency"
	"max.ks1230/currconv/internal/logger"
	"max.ks1230/currconv/internal/model/convert"
	"max.ks1230/currconv/internal/model/extract"
	"max.ks1230/currconv/internal/model/popup"
	"max.ks1230/currconv/internal/model/rates"
	"max.ks1230/currconv/internal/model/storage"
)

type snapshotStore interface {
	GetSnapshot(ctx context.Context) (*currency.Snapshot, error)
	SaveSnapshot(ctx context.Context, snapshot currency.Snapshot) error
}

// App holds the conversion pipeline shared by every front-end.
type App struct {
	Service *popup.Service

	puller   *rates.Puller
	consumer *kafka.Consumer
	closers  []func()
}

func New(ctx context.Context, conf *config.Service) (*App, error) {
	table, err := currency.LoadTable(conf.App().Currencies(), conf.App().TargetCurrency())
	if err != nil {
		return nil, errors.Wrap(err, "load currency table")
	}
	logger.Info("currency table loaded", zap.Int("codes", len(table.Codes())), zap.Int("symbols", len(table.Symbols())))

	a := &App{}
	store, err := a.newStore(ctx, conf)
	if err != nil {
		a.Close()
		return nil, err
	}

	opts := []rates.Option{
		rates.WithTimeout(conf.OXR().Timeout()),
		rates.WithKey(conf.Storage().Key()),
	}
	if conf.Kafka().Enabled() {
		producer, err := kafka.NewProducer(conf.Kafka())
		if err != nil {
			a.Close()
			return nil, errors.Wrap(err, "init kafka producer")
		}
		a.closers = append(a.closers, producer.Close)
		opts = append(opts, rates.WithListener(producer))

		if conf.Kafka().ConsumerGroup() != "" {
			if a.consumer, err = kafka.NewConsumer(conf.Kafka(), store); err != nil {
				a.Close()
				return nil, errors.Wrap(err, "init kafka consumer")
			}
			a.closers = append(a.closers, a.consumer.Close)
		}
	}

	policy := rates.NewPolicy(store, oxr.New(conf.OXR()), table.Codes(), conf.App(), opts...)
	if conf.App().PrefetchEnabled() {
		a.puller = rates.NewPuller(policy, conf.App())
	}
	a.Service = popup.NewService(extract.New(table), policy, convert.New(conf.App().Locale()), conf.App())
	return a, nil
}

// Start runs the background workers until ctx is done.
func (a *App) Start(ctx context.Context) {
	if a.puller != nil {
		go a.puller.Pull(ctx)
	}
	if a.consumer != nil {
		go func() {
			if err := a.consumer.StartConsuming(ctx); err != nil {
				logger.Error("rates consumer stopped", zap.Error(err))
			}
		}()
	}
}

func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *App) newStore(ctx context.Context, conf *config.Service) (snapshotStore, error) {
	key := conf.Storage().Key()
	logger.Info("rates storage", zap.String("backend", conf.Storage().Kind()), zap.String("key", key))

	switch conf.Storage().Kind() {
	case config.BackendMemory:
		return storage.NewInMemStorage(), nil
	case config.BackendMemcached:
		mc, err := cache.NewMemcache(conf.Memcached(), key)
		if err != nil {
			return nil, errors.Wrap(err, "init memcached")
		}
		return mc, nil
	case config.BackendRedis:
		rdb, err := cache.NewRedisClient(ctx, conf.Redis())
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() {
			if err := rdb.Close(); err != nil {
				logger.Error("failed to close redis", zap.Error(err))
			}
		})
		return cache.NewRedisStore(rdb, key), nil
	case config.BackendPostgres:
		db, err := storage.NewPostgresStorage(conf.Postgres(), key)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() {
			if err := db.Close(); err != nil {
				logger.Error("failed to close postgres", zap.Error(err))
			}
		})
		return db, nil
	default:
		return nil, errors.Errorf("unknown storage backend %q", conf.Storage().Kind())
	}
}
