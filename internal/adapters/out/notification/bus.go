// Package notification fans committed order changes out to live-update
// subscribers.
//
// The Bus never blocks a publisher: every message goes through one bounded
// queue drained by a single dispatcher goroutine, and every subscriber owns
// a bounded queue of its own. A full queue drops the message and logs it.
// Delivery is at most once and only reaches subscribers present when the
// dispatcher handles the message.
package notification

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const (
	TopicOrderUpdates    = "order-updates"
	TopicDeliveryUpdates = "delivery-updates"
)

// Topics lists every topic a client may subscribe to.
func Topics() []string {
	return []string{TopicOrderUpdates, TopicDeliveryUpdates}
}

type EnvelopeType string

const (
	OrderUpdate    EnvelopeType = "ORDER_UPDATE"
	DeliveryUpdate EnvelopeType = "DELIVERY_UPDATE"
)

// Envelope is the wire shape of a live update.
type Envelope struct {
	Type      EnvelopeType `json:"type"`
	Message   string       `json:"message"`
	Payload   any          `json:"payload"`
	Timestamp time.Time    `json:"timestamp"`
}

// Message is an envelope addressed to a topic. Key is the order id and is
// used by transports that partition by key.
type Message struct {
	Topic    string
	Key      string
	Envelope Envelope
}

const DefaultQueueSize = 256

// Bus is an in-process publish/subscribe hub.
type Bus struct {
	log       *zap.Logger
	queue     chan Message
	queueSize int

	mu   sync.RWMutex
	subs map[string]map[*Subscription]struct{}

	closed atomic.Bool
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewBus starts the dispatcher. queueSize bounds the publish queue and each
// subscriber queue; values below one fall back to DefaultQueueSize.
func NewBus(log *zap.Logger, queueSize int) *Bus {
	if log == nil {
		log = zap.NewNop()
	}
	if queueSize < 1 {
		queueSize = DefaultQueueSize
	}

	b := &Bus{
		log:       log.Named("notification"),
		queue:     make(chan Message, queueSize),
		queueSize: queueSize,
		subs:      make(map[string]map[*Subscription]struct{}),
		done:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish enqueues msg without blocking. It reports whether the message was
// accepted.
func (b *Bus) Publish(topic string, key string, envelope Envelope) bool {
	if b.closed.Load() {
		return false
	}

	msg := Message{Topic: topic, Key: key, Envelope: envelope}
	select {
	case b.queue <- msg:
		return true
	default:
		b.log.Warn("notification queue full, message dropped",
			zap.String("topic", topic),
			zap.String("key", key),
			zap.String("type", string(envelope.Type)),
		)
		return false
	}
}

// Subscribe registers a subscriber for topic. Messages published before the
// call are not replayed.
func (b *Bus) Subscribe(topic string) *Subscription {
	sub := &Subscription{
		bus:   b,
		topic: topic,
		ch:    make(chan Message, b.queueSize),
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed.Load() {
		sub.closed = true
		close(sub.ch)
		return sub
	}
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[*Subscription]struct{})
	}
	b.subs[topic][sub] = struct{}{}
	return sub
}

// SubscriberCount returns the number of live subscribers of topic.
func (b *Bus) SubscriberCount(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[topic])
}

// Close stops the dispatcher after it delivered what is already queued and
// closes every subscription.
func (b *Bus) Close() {
	if !b.closed.CompareAndSwap(false, true) {
		return
	}
	close(b.done)
	b.wg.Wait()

	b.mu.Lock()
	defer b.mu.Unlock()
	for topic, subs := range b.subs {
		for sub := range subs {
			sub.closed = true
			close(sub.ch)
		}
		delete(b.subs, topic)
	}
}

func (b *Bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case msg := <-b.queue:
			b.deliver(msg)
		case <-b.done:
			for {
				select {
				case msg := <-b.queue:
					b.deliver(msg)
				default:
					return
				}
			}
		}
	}
}

func (b *Bus) deliver(msg Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subs[msg.Topic] {
		select {
		case sub.ch <- msg:
		default:
			b.log.Warn("subscriber queue full, message dropped",
				zap.String("topic", msg.Topic),
				zap.String("key", msg.Key),
			)
		}
	}
}

// Subscription is one subscriber's view of a topic.
type Subscription struct {
	bus    *Bus
	topic  string
	ch     chan Message
	closed bool
}

// C returns the channel messages arrive on. It is closed by Close or when
// the bus shuts down.
func (s *Subscription) C() <-chan Message {
	return s.ch
}

func (s *Subscription) Topic() string {
	return s.topic
}

// Close unregisters the subscription. It is safe to call more than once.
func (s *Subscription) Close() {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	delete(s.bus.subs[s.topic], s)
	close(s.ch)
}
