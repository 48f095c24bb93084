package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Publisher appends events to a single Redis stream.
type Publisher struct {
	client redis.Cmdable
	stream string
	now    func() time.Time
}

func NewPublisher(client redis.Cmdable, stream string) *Publisher {
	return &Publisher{client: client, stream: stream, now: time.Now}
}

func (p *Publisher) Publish(ctx context.Context, eventType string, data any) error {
	eventJSON, err := encode(eventType, p.now().UTC(), data)
	if err != nil {
		return err
	}

	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{
			"event": eventJSON,
		},
	}

	if _, err := p.client.XAdd(ctx, args).Result(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

func encode(eventType string, ts time.Time, data any) ([]byte, error) {
	eventJSON, err := json.Marshal(Event{Type: eventType, Timestamp: ts, Data: data})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	return eventJSON, nil
}
