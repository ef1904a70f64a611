package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

// ChannelUserEvents 多实例部署时各实例共享的用户事件频道
const ChannelUserEvents = "soultria_user_events"

// Event 推送给某个用户的事件
type Event struct {
	Type   string          `json:"type"`
	UserID int64           `json:"user_id"`
	Data   json.RawMessage `json:"data,omitempty"`
}

type Publisher struct {
	client  *redis.Client
	channel string
}

func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client, channel: ChannelUserEvents}
}

// Notify 发布事件，由订阅该频道的实例转发给在线连接
func (p *Publisher) Notify(ctx context.Context, userID int64, eventType string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	msg, err := json.Marshal(&Event{Type: eventType, UserID: userID, Data: payload})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return p.client.Publish(ctx, p.channel, msg).Err()
}

type Subscriber struct {
	client  *redis.Client
	channel string
}

func NewSubscriber(client *redis.Client) *Subscriber {
	return &Subscriber{client: client, channel: ChannelUserEvents}
}

// Subscribe 阻塞接收事件直到 ctx 结束
func (s *Subscriber) Subscribe(ctx context.Context, handler func(*Event)) error {
	sub := s.client.Subscribe(ctx, s.channel)
	defer sub.Close()

	// 等待订阅确认，保证返回前已开始接收
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe %s: %w", s.channel, err)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}

			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("pubsub: drop malformed event: %v", err)
				continue
			}
			handler(&event)
		}
	}
}
