package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/currconv/internal/entity/currency"
	"max.ks1230/currconv/internal/logger"
)

type consumerConfig interface {
	producerConfig
	ConsumerGroup() string
}

type snapshotStore interface {
	GetSnapshot(ctx context.Context) (*currency.Snapshot, error)
	SaveSnapshot(ctx context.Context, snapshot currency.Snapshot) error
}

// Consumer copies snapshots refreshed by other instances into the local
// store, so processes with a private store skip their own refresh.
type Consumer struct {
	consumerGroup sarama.ConsumerGroup
	topic         string
	storage       snapshotStore
}

func NewConsumer(cfg consumerConfig, storage snapshotStore) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Consumer.Offsets.Initial = sarama.OffsetNewest

	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers(), cfg.ConsumerGroup(), config)
	if err != nil {
		return nil, errors.Wrap(err, "new consumer group")
	}
	return &Consumer{
		consumerGroup: consumerGroup,
		topic:         cfg.RatesTopic(),
		storage:       storage,
	}, nil
}

func (c *Consumer) StartConsuming(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			err := c.consumerGroup.Consume(ctx, []string{c.topic}, c)
			if err != nil {
				return errors.Wrap(err, fmt.Sprintf("consume from %s", c.topic))
			}
		}
	}
}

func (c *Consumer) Close() {
	if err := c.consumerGroup.Close(); err != nil {
		logger.Error("failed to close consumer group", zap.Error(err))
	}
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - setup")
	return nil
}

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - cleanup")
	return nil
}

func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		if err := c.apply(session.Context(), message.Value); err != nil {
			logger.Error("cannot apply rates message", zap.Error(err), zap.ByteString("key", message.Key))
		}
		session.MarkMessage(message, "")
	}
	return nil
}

// apply stores the received snapshot unless the local one is newer.
func (c *Consumer) apply(ctx context.Context, value []byte) error {
	var snapshot currency.Snapshot
	if err := json.Unmarshal(value, &snapshot); err != nil {
		return errors.Wrap(err, "unmarshal snapshot")
	}
	if len(snapshot.Rates) == 0 || snapshot.Timestamp == 0 {
		return errors.New("empty snapshot")
	}

	local, err := c.storage.GetSnapshot(ctx)
	if err != nil {
		return errors.Wrap(err, "read local snapshot")
	}
	if local != nil && local.Timestamp >= snapshot.Timestamp {
		logger.Debug("local rates are up to date", zap.Int64("timestamp", local.Timestamp))
		return nil
	}

	logger.Info("received rates", zap.Int64("timestamp", snapshot.Timestamp))
	return errors.Wrap(c.storage.SaveSnapshot(ctx, snapshot), "save snapshot")
}
