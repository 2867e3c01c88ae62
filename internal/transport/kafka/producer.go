package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"artmarket-partner-console/internal/domain"
	"artmarket-partner-console/internal/logx"
)

var newSyncProducer = sarama.NewSyncProducer

// Publisher sends status transitions to a Kafka topic.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   logx.Logger
	newID    func() string
}

// NewPublisher creates a publisher. It returns nil, nil when Kafka is not configured.
func NewPublisher(logger logx.Logger, brokers []string, topic string) (*Publisher, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Retry.Backoff = 250 * time.Millisecond
	cfg.Producer.Return.Successes = true
	cfg.Producer.Timeout = 5 * time.Second

	p, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return NewPublisherWithProducer(logger, p, topic), nil
}

// NewPublisherWithProducer wraps an existing producer.
func NewPublisherWithProducer(logger logx.Logger, p sarama.SyncProducer, topic string) *Publisher {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Publisher{
		producer: p,
		topic:    topic,
		logger:   logger,
		newID:    func() string { return uuid.NewString() },
	}
}

type sendResult struct {
	partition int32
	offset    int64
	err       error
}

// Record publishes t keyed by delivery id. It stops waiting when ctx is done;
// the send itself is still bounded by the producer timeout.
func (p *Publisher) Record(ctx context.Context, t domain.Transition) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ev := FromTransition(p.newID(), t)
	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.DeliveryID),
		Value: sarama.ByteEncoder(b),
	}
	done := make(chan sendResult, 1)
	go func() {
		partition, offset, err := p.producer.SendMessage(msg)
		done <- sendResult{partition: partition, offset: offset, err: err}
	}()

	var res sendResult
	select {
	case <-ctx.Done():
		p.logger.Warn("kafka publish abandoned",
			logx.String("topic", p.topic),
			logx.String("delivery_id", ev.DeliveryID),
			logx.Err(ctx.Err()),
		)
		return fmt.Errorf("publish status event: %w", ctx.Err())
	case res = <-done:
	}
	if err := res.err; err != nil {
		p.logger.Error("kafka publish failed",
			logx.String("topic", p.topic),
			logx.String("delivery_id", ev.DeliveryID),
			logx.Err(err),
		)
		return fmt.Errorf("publish status event: %w", err)
	}

	p.logger.Debug("kafka event published",
		logx.String("event_id", ev.EventID),
		logx.String("delivery_id", ev.DeliveryID),
		logx.Int("partition", int(res.partition)),
		logx.Int64("offset", res.offset),
	)
	return nil
}

// Close closes the producer.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
