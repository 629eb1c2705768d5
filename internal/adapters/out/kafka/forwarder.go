// Package kafka forwards live-update envelopes from the notification bus to
// Kafka topics, keyed by order id so one order's updates stay on one
// partition.
package kafka

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"foodies/internal/adapters/out/notification"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Producer is the subset of *kafka.Writer the forwarder uses.
type Producer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// NewWriter builds a writer that hashes keys to partitions.
func NewWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}
}

// Forwarder is a bus subscriber that writes every message it receives to
// Kafka. Failed writes are logged and dropped.
type Forwarder struct {
	log      *zap.Logger
	bus      *notification.Bus
	producer Producer
	prefix   string
	timeout  time.Duration
}

func NewForwarder(log *zap.Logger, bus *notification.Bus, producer Producer, topicPrefix string) *Forwarder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Forwarder{
		log:      log.Named("kafka"),
		bus:      bus,
		producer: producer,
		prefix:   topicPrefix,
		timeout:  5 * time.Second,
	}
}

// Run subscribes to every notification topic and forwards until ctx is done
// or the bus closes.
func (f *Forwarder) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, topic := range notification.Topics() {
		sub := f.bus.Subscribe(topic)
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sub.Close()
			f.forward(ctx, sub)
		}()
	}
	wg.Wait()
}

func (f *Forwarder) forward(ctx context.Context, sub *notification.Subscription) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.C():
			if !ok {
				return
			}
			f.write(ctx, msg)
		}
	}
}

func (f *Forwarder) write(ctx context.Context, msg notification.Message) {
	value, err := json.Marshal(msg.Envelope)
	if err != nil {
		f.log.Error("encode envelope failed", zap.String("topic", msg.Topic), zap.Error(err))
		return
	}

	writeCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	err = f.producer.WriteMessages(writeCtx, kafka.Message{
		Topic: f.prefix + msg.Topic,
		Key:   []byte(msg.Key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(msg.Envelope.Type)},
		},
	})
	if err != nil {
		f.log.Error("kafka forward failed",
			zap.String("topic", msg.Topic),
			zap.String("key", msg.Key),
			zap.Error(err),
		)
		return
	}
	f.log.Debug("kafka forwarded", zap.String("topic", msg.Topic), zap.String("key", msg.Key))
}
