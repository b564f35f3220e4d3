package kafka

import (
	"encoding/json"
	"fmt"
	"github.com/ariefcatur/go-order-summary/internal/orders"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"time"
)

func MustMarshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

func UnmarshalEnvelope(b []byte, out *orders.Envelope) error {
	return json.Unmarshal(b, out)
}

// Unwrap memudahkan decode payload spesifik
func UnwrapPayload[T any](payload json.RawMessage) (T, error) {
	var t T
	if err := json.Unmarshal(payload, &t); err != nil {
		return t, fmt.Errorf("decode payload: %w", err)
	}
	return t, nil
}

// NewEnvelope: envelope v1, correlation = order_id.
func NewEnvelope(eventType, producer, orderID, traceID string, payload any) orders.Envelope {
	return orders.Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      producer,
		TraceID:       traceID,
		CorrelationID: orderID,
		Payload:       MustMarshal(payload),
	}
}

// EventHeaders: header standar x-event-type / x-event-version.
func EventHeaders(env orders.Envelope) []kafka.Header {
	return []kafka.Header{
		{Key: "x-event-type", Value: []byte(env.EventType)},
		{Key: "x-event-version", Value: []byte(fmt.Sprint(env.EventVersion))},
	}
}
