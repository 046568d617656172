// Package eventbus publishes domain events to Kafka. When no brokers
// are configured the noop bus stands in so callers never branch on
// deployment mode.
package eventbus

import (
	"context"
	"encoding/json"
)

// Event is the Kafka message payload envelope.
type Event struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// EventBus abstracts event publication.
type EventBus interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close()
}

// NoopEventBus discards every event. Used when Kafka is not configured.
type NoopEventBus struct{}

func NewNoopEventBus() *NoopEventBus { return &NoopEventBus{} }

func (n *NoopEventBus) Publish(context.Context, string, Event) error { return nil }

func (n *NoopEventBus) Close() {}
