package nats

import (
	"testing"
	"time"
)

func TestRecordCreatedEventRoundTrip(t *testing.T) {
	published := time.Date(2026, 5, 17, 9, 30, 0, 0, time.UTC)
	payload, err := encodeRecordCreated("rec-123", published)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	recordID, publishedAt := decodeRecordCreated(payload)
	if recordID != "rec-123" {
		t.Fatalf("record id = %q, want rec-123", recordID)
	}
	if !publishedAt.Equal(published) {
		t.Fatalf("published at = %v, want %v", publishedAt, published)
	}
}

func TestDecodeBareRecordIDPayload(t *testing.T) {
	recordID, publishedAt := decodeRecordCreated([]byte("rec-legacy"))
	if recordID != "rec-legacy" {
		t.Fatalf("record id = %q, want rec-legacy", recordID)
	}
	if !publishedAt.IsZero() {
		t.Fatalf("bare payloads carry no publish time, got %v", publishedAt)
	}
}

func TestDecodeEnvelopeWithoutRecordIDFallsBack(t *testing.T) {
	raw := []byte(`{"published_at":"2026-05-17T09:30:00Z"}`)
	recordID, publishedAt := decodeRecordCreated(raw)
	if recordID != string(raw) {
		t.Fatalf("record id = %q, want raw payload", recordID)
	}
	if !publishedAt.IsZero() {
		t.Fatalf("fallback must not trust a partial envelope, got %v", publishedAt)
	}
}
