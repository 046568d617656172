package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	DigestCreated EventType = "digest.created"
	DigestViewed  EventType = "digest.viewed"
)

// BaseEvent carries the envelope fields shared by every event.
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

func NewBaseEvent(t EventType, source string) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      t,
		Timestamp: time.Now(),
		Source:    source,
		Version:   "1",
	}
}

// DigestCreatedEvent is published after a digest has been persisted to
// both stores.
type DigestCreatedEvent struct {
	BaseEvent
	DigestID          int64  `json:"digest_id"`
	ArticleID         string `json:"article_id"`
	URL               string `json:"url"`
	Title             string `json:"title"`
	SummarySource     string `json:"summary_source"`
	TranslationSource string `json:"translation_source"`
}

// DigestViewedEvent is published when a digest view counter is bumped.
type DigestViewedEvent struct {
	BaseEvent
	ArticleID string `json:"article_id"`
	ViewCount int64  `json:"view_count"`
}

// SerializeEvent marshals an event and returns its type for routing.
func SerializeEvent(event interface{}) ([]byte, EventType, error) {
	var eventType EventType

	switch e := event.(type) {
	case DigestCreatedEvent:
		eventType = e.Type
	case DigestViewedEvent:
		eventType = e.Type
	default:
		return nil, "", fmt.Errorf("unknown event type: %T", event)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal event: %w", err)
	}
	return data, eventType, nil
}

// DeserializeEvent rebuilds the concrete event struct for a type.
func DeserializeEvent(eventType EventType, data []byte) (interface{}, error) {
	var event interface{}

	switch eventType {
	case DigestCreated:
		event = &DigestCreatedEvent{}
	case DigestViewed:
		event = &DigestViewedEvent{}
	default:
		return nil, fmt.Errorf("unknown event type: %s", eventType)
	}

	if err := json.Unmarshal(data, event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	return event, nil
}
