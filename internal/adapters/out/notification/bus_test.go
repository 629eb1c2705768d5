package notification_test

import (
	"fmt"
	"testing"
	"time"

	"foodies/internal/adapters/out/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func receive(t *testing.T, sub *notification.Subscription) notification.Message {
	t.Helper()

	select {
	case msg, ok := <-sub.C():
		require.True(t, ok, "subscription closed")
		return msg
	case <-time.After(time.Second):
		require.FailNow(t, "no message received")
		return notification.Message{}
	}
}

func TestBus_DeliversInPublishOrder(t *testing.T) {
	bus := notification.NewBus(zap.NewNop(), 16)
	defer bus.Close()

	first := bus.Subscribe(notification.TopicOrderUpdates)
	second := bus.Subscribe(notification.TopicOrderUpdates)
	other := bus.Subscribe(notification.TopicDeliveryUpdates)

	for i := range 5 {
		require.True(t, bus.Publish(notification.TopicOrderUpdates, "order-1", notification.Envelope{
			Type:    notification.OrderUpdate,
			Message: fmt.Sprintf("update %d", i),
		}))
	}

	for _, sub := range []*notification.Subscription{first, second} {
		for i := range 5 {
			msg := receive(t, sub)
			assert.Equal(t, fmt.Sprintf("update %d", i), msg.Envelope.Message)
			assert.Equal(t, "order-1", msg.Key)
		}
	}

	select {
	case msg := <-other.C():
		t.Fatalf("unexpected message on other topic: %v", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBus_NoReplayForLateSubscribers(t *testing.T) {
	bus := notification.NewBus(zap.NewNop(), 16)
	defer bus.Close()

	early := bus.Subscribe(notification.TopicOrderUpdates)
	bus.Publish(notification.TopicOrderUpdates, "order-1", notification.Envelope{Message: "before"})
	receive(t, early)

	late := bus.Subscribe(notification.TopicOrderUpdates)
	bus.Publish(notification.TopicOrderUpdates, "order-1", notification.Envelope{Message: "after"})

	assert.Equal(t, "after", receive(t, late).Envelope.Message)
	assert.Equal(t, "after", receive(t, early).Envelope.Message)
}

func TestBus_SlowSubscriberDropsAndLogs(t *testing.T) {
	core, observed := observer.New(zapcore.WarnLevel)
	bus := notification.NewBus(zap.New(core), 1)
	defer bus.Close()

	slow := bus.Subscribe(notification.TopicOrderUpdates)

	for i := range 10 {
		bus.Publish(notification.TopicOrderUpdates, "order-1", notification.Envelope{Message: fmt.Sprintf("update %d", i)})
	}

	assert.Eventually(t, func() bool {
		return observed.FilterMessageSnippet("message dropped").Len() > 0
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, "update 0", receive(t, slow).Envelope.Message)
}

func TestSubscription_Close(t *testing.T) {
	bus := notification.NewBus(zap.NewNop(), 4)
	defer bus.Close()

	sub := bus.Subscribe(notification.TopicDeliveryUpdates)
	require.Equal(t, 1, bus.SubscriberCount(notification.TopicDeliveryUpdates))

	sub.Close()
	sub.Close()

	assert.Equal(t, 0, bus.SubscriberCount(notification.TopicDeliveryUpdates))
	_, ok := <-sub.C()
	assert.False(t, ok)

	assert.True(t, bus.Publish(notification.TopicDeliveryUpdates, "order-1", notification.Envelope{}))
}

func TestBus_Close(t *testing.T) {
	bus := notification.NewBus(nil, 4)
	sub := bus.Subscribe(notification.TopicOrderUpdates)

	bus.Publish(notification.TopicOrderUpdates, "order-1", notification.Envelope{Message: "last"})
	bus.Close()
	bus.Close()

	msg, ok := <-sub.C()
	require.True(t, ok, "queued message is delivered before shutdown")
	assert.Equal(t, "last", msg.Envelope.Message)

	_, ok = <-sub.C()
	assert.False(t, ok)

	assert.False(t, bus.Publish(notification.TopicOrderUpdates, "order-1", notification.Envelope{}))

	late := bus.Subscribe(notification.TopicOrderUpdates)
	_, ok = <-late.C()
	assert.False(t, ok)
	late.Close()
}
