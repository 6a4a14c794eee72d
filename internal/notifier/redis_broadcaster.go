package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"leave-payroll/internal/events"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const DefaultChannel = "leave-payroll:changes"

// RedisBroadcaster publishes changes on a Redis channel and relays whatever
// arrives on that channel into the local Hub, so observers connected to any
// API instance see changes made through any other instance.
type RedisBroadcaster struct {
	rdb     *redis.Client
	channel string
	hub     *Hub
	logger  *zap.Logger
}

func NewRedisBroadcaster(rdb *redis.Client, channel string, hub *Hub, logger ...*zap.Logger) *RedisBroadcaster {
	l := zap.L().Named("notifier.redis")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notifier.redis")
	}
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisBroadcaster{rdb: rdb, channel: channel, hub: hub, logger: l}
}

// Publish sends one Publish call's changes as a single Redis message, so a
// batch is relayed whole or delivered locally whole and keeps its order.
func (b *RedisBroadcaster) Publish(ctx context.Context, changes ...events.Change) {
	msgs := make([]json.RawMessage, 0, len(changes))
	for _, change := range changes {
		msg, err := json.Marshal(change)
		if err != nil {
			b.logger.Error("encode change failed", zap.String("kind", string(change.Kind)), zap.Error(err))
			continue
		}
		msgs = append(msgs, msg)
	}
	if len(msgs) == 0 {
		return
	}

	batch, err := json.Marshal(msgs)
	if err == nil {
		err = b.rdb.Publish(ctx, b.channel, batch).Err()
	}
	if err != nil {
		// at least the observers on this instance still hear about it
		b.logger.Warn("redis publish failed, delivering locally",
			zap.Int("changes", len(msgs)),
			zap.Error(err),
		)
		b.broadcast(msgs)
		return
	}

	b.logger.Debug("changes published", zap.Int("changes", len(msgs)))
}

func (b *RedisBroadcaster) broadcast(msgs []json.RawMessage) {
	for _, msg := range msgs {
		b.hub.Broadcast(msg)
	}
}

// Start subscribes to the channel and returns once Redis confirmed the
// subscription. Relaying stops when ctx is cancelled.
func (b *RedisBroadcaster) Start(ctx context.Context) error {
	pubsub := b.rdb.Subscribe(ctx, b.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return fmt.Errorf("subscribe %s: %w", b.channel, err)
	}

	b.logger.Info("relaying changes", zap.String("channel", b.channel))

	go func() {
		defer pubsub.Close()
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				b.logger.Info("change relay stopped")
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var batch []json.RawMessage
				if err := json.Unmarshal([]byte(msg.Payload), &batch); err != nil {
					b.logger.Warn("dropping undecodable change batch", zap.Error(err))
					continue
				}
				b.broadcast(batch)
			}
		}
	}()

	return nil
}
