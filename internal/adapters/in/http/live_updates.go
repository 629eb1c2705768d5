package http

import (
	"net/http"
	"slices"
	"time"

	"foodies/internal/adapters/out/notification"
	"foodies/internal/generated/servers"
	"foodies/internal/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Subscriber is the part of notification.Bus the live-update endpoint uses.
type Subscriber interface {
	Subscribe(topic string) *notification.Subscription
}

// LiveUpdates streams bus envelopes of one topic to WebSocket clients.
type LiveUpdates struct {
	bus      Subscriber
	log      *zap.Logger
	upgrader websocket.Upgrader
}

func NewLiveUpdates(bus Subscriber, log *zap.Logger) *LiveUpdates {
	if log == nil {
		log = zap.NewNop()
	}
	return &LiveUpdates{
		bus: bus,
		log: log.Named("live_updates"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Handle serves GET /ws/:topic. Each envelope is sent as one JSON text
// frame; messages published before the connection are not replayed.
func (l *LiveUpdates) Handle(ctx echo.Context) error {
	topic := ctx.Param("topic")
	if !slices.Contains(notification.Topics(), topic) {
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "unknown topic " + topic,
		})
	}

	conn, err := l.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		// Upgrade has already written the failure response.
		return nil
	}

	sub := l.bus.Subscribe(topic)
	log := logger.FromCtx(ctx.Request().Context(), l.log).With(
		zap.String("topic", topic),
		zap.String("principal", principalFrom(ctx).String()),
	)
	log.Info("live update client connected")

	done := make(chan struct{})
	go l.readLoop(conn, done)
	l.writeLoop(conn, sub, done, log)

	sub.Close()
	_ = conn.Close()
	log.Info("live update client disconnected")
	return nil
}

// readLoop discards client frames and closes done when the peer goes away.
func (l *LiveUpdates) readLoop(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (l *LiveUpdates) writeLoop(conn *websocket.Conn, sub *notification.Subscription, done <-chan struct{}, log *zap.Logger) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case msg, ok := <-sub.C():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
				return
			}
			if err := conn.WriteJSON(msg.Envelope); err != nil {
				log.Warn("live update write failed", zap.Error(err))
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
