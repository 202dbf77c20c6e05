package realtime

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/steellight541/cinema-app/utils"
)

const screeningsChannel = "cinema:screenings:updated"

// RedisBridge is the relayed fanout variant: events are published to a
// shared Redis channel and every instance forwards channel messages into
// its local hub, so subscribers of all instances see each mutation.
type RedisBridge struct {
	rdb *redis.Client
	hub *Hub
}

func NewRedisBridge(addr string, hub *Hub) *RedisBridge {
	b := &RedisBridge{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		hub: hub,
	}
	go b.relay()
	return b
}

func (b *RedisBridge) Broadcast(event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		utils.Logger.Errorw("failed to encode event for redis", "error", err)
		return
	}
	if err := b.rdb.Publish(context.Background(), screeningsChannel, payload).Err(); err != nil {
		// best-effort: the triggering operation already committed
		utils.Logger.Warnw("redis publish failed", "error", err)
	}
}

func (b *RedisBridge) relay() {
	pubsub := b.rdb.Subscribe(context.Background(), screeningsChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var event Event
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			utils.Logger.Warnw("dropping malformed event from redis", "error", err)
			continue
		}
		b.hub.Broadcast(event)
	}
}
