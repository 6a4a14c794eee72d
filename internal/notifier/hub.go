package notifier

import (
	"context"
	"encoding/json"
	"sync"

	"leave-payroll/internal/events"

	"go.uber.org/zap"
)

const defaultSubscriberBuffer = 16

// Hub keeps the observers connected to this process. A message reaches each
// observer at most once; observers that fall behind lose messages instead of
// slowing the publisher down.
type Hub struct {
	mu     sync.RWMutex
	subs   map[*Subscription]struct{}
	buffer int
	logger *zap.Logger
}

type Subscription struct {
	C    <-chan []byte
	ch   chan []byte
	hub  *Hub
	once sync.Once
}

func NewHub(buffer int, logger ...*zap.Logger) *Hub {
	l := zap.L().Named("notifier.hub")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notifier.hub")
	}
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}
	return &Hub{
		subs:   make(map[*Subscription]struct{}),
		buffer: buffer,
		logger: l,
	}
}

func (h *Hub) Subscribe() *Subscription {
	ch := make(chan []byte, h.buffer)
	sub := &Subscription{C: ch, ch: ch, hub: h}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	total := len(h.subs)
	h.mu.Unlock()

	h.logger.Debug("observer subscribed", zap.Int("observers", total))
	return sub
}

// Close detaches the subscription and closes its channel. Safe to call twice.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		delete(s.hub.subs, s)
		close(s.ch)
		s.hub.mu.Unlock()
	})
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Publish encodes each change and hands it to every current observer.
func (h *Hub) Publish(ctx context.Context, changes ...events.Change) {
	for _, change := range changes {
		msg, err := json.Marshal(change)
		if err != nil {
			h.logger.Error("encode change failed", zap.String("kind", string(change.Kind)), zap.Error(err))
			continue
		}
		h.Broadcast(msg)
	}
}

func (h *Hub) Broadcast(msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs {
		select {
		case sub.ch <- msg:
		default:
			h.logger.Warn("observer buffer full, message dropped")
		}
	}
}
