package nats

import (
	"encoding/json"
	"fmt"
	"time"
)

// recordCreatedEvent is the wire form of a record-created announcement. The
// publish timestamp lets the worker report how long events sat in the queue.
type recordCreatedEvent struct {
	RecordID    string    `json:"record_id"`
	PublishedAt time.Time `json:"published_at"`
}

func encodeRecordCreated(recordID string, publishedAt time.Time) ([]byte, error) {
	payload, err := json.Marshal(recordCreatedEvent{
		RecordID:    recordID,
		PublishedAt: publishedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("encode record event: %w", err)
	}
	return payload, nil
}

// decodeRecordCreated accepts both the JSON envelope and a bare record ID.
// Bare payloads come from publishers predating the envelope; they decode
// with a zero timestamp so the consumer skips the lag observation.
func decodeRecordCreated(data []byte) (string, time.Time) {
	var event recordCreatedEvent
	if err := json.Unmarshal(data, &event); err == nil && event.RecordID != "" {
		return event.RecordID, event.PublishedAt
	}
	return string(data), time.Time{}
}
