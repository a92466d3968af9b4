package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/Go-Social-Blog/domain"
)

const (
	// KeyUserChannel is the per-recipient realtime channel pattern.
	KeyUserChannel = "notify:user:%s"
)

type realtimePublisher struct {
	client *redis.Client
}

var _ domain.RealtimePublisher = (*realtimePublisher)(nil)

// NewRealtimePublisher creates the redis pub/sub backed realtime channel.
// Subscribers (the websocket gateway, outside this module) listen on the
// user's channel and forward payloads to connected clients.
func NewRealtimePublisher(client *redis.Client) *realtimePublisher {
	return &realtimePublisher{client}
}

func (p *realtimePublisher) PublishToUser(ctx context.Context, username string, payload domain.PushMessage) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, fmt.Sprintf(KeyUserChannel, username), data).Err()
}
