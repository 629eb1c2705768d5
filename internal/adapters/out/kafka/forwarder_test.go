package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	kafkaadapter "foodies/internal/adapters/out/kafka"
	"foodies/internal/adapters/out/notification"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingProducer struct {
	mu   sync.Mutex
	msgs []kafka.Message
	err  error
}

func (p *recordingProducer) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.msgs = append(p.msgs, msgs...)
	return nil
}

func (p *recordingProducer) written() []kafka.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]kafka.Message(nil), p.msgs...)
}

func startForwarder(t *testing.T, log *zap.Logger, producer kafkaadapter.Producer) *notification.Bus {
	t.Helper()

	bus := notification.NewBus(zap.NewNop(), 16)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		kafkaadapter.NewForwarder(log, bus, producer, "foodies.").Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
		bus.Close()
	})

	require.Eventually(t, func() bool {
		return bus.SubscriberCount(notification.TopicOrderUpdates) == 1 &&
			bus.SubscriberCount(notification.TopicDeliveryUpdates) == 1
	}, time.Second, 5*time.Millisecond)
	return bus
}

func TestForwarder_WritesKeyedMessages(t *testing.T) {
	producer := &recordingProducer{}
	bus := startForwarder(t, zap.NewNop(), producer)

	bus.Publish(notification.TopicDeliveryUpdates, "order-7", notification.Envelope{
		Type:    notification.DeliveryUpdate,
		Message: "Delivery location updated for order order-7",
		Payload: notification.DeliveryPosition{OrderID: "order-7", Latitude: 12.9716, Longitude: 77.5946},
	})

	require.Eventually(t, func() bool { return len(producer.written()) == 1 }, time.Second, 5*time.Millisecond)

	msg := producer.written()[0]
	assert.Equal(t, "foodies.delivery-updates", msg.Topic)
	assert.Equal(t, "order-7", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "DELIVERY_UPDATE", string(msg.Headers[0].Value))

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &envelope))
	assert.Equal(t, "DELIVERY_UPDATE", envelope["type"])
	assert.InDelta(t, 12.9716, envelope["payload"].(map[string]any)["latitude"], 1e-9)
}

func TestForwarder_LogsWriteFailures(t *testing.T) {
	core, observed := observer.New(zapcore.ErrorLevel)
	producer := &recordingProducer{err: errors.New("leader not available")}
	bus := startForwarder(t, zap.New(core), producer)

	bus.Publish(notification.TopicOrderUpdates, "order-1", notification.Envelope{Type: notification.OrderUpdate})

	assert.Eventually(t, func() bool {
		return observed.FilterMessage("kafka forward failed").Len() == 1
	}, time.Second, 5*time.Millisecond)
}
