package orders

import (
	"encoding/json"
	"time"
)

const (
	EventReservationChanged = "ReservationChanged"
	EventSummaryRecomputed  = "SummaryRecomputed"
	EventAdjustmentOpened   = "ReservationAdjustmentOpened"
	EventAdjustmentClosed   = "ReservationAdjustmentClosed"
)

type Envelope struct {
	EventID       string          `json:"event_id"`      // uuid
	EventType     string          `json:"event_type"`    // salah satu const di atas
	EventVersion  int             `json:"event_version"` // 1
	OccurredAt    time.Time       `json:"occurred_at"`   // RFC3339
	Producer      string          `json:"producer"`      // e.g., "order-summary-api"
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // biasanya order_id
	Payload       json.RawMessage `json:"payload"`
}

// ---- Payload tipe per event ----

type ReservationChangedPayload struct {
	OrderID       string   `json:"order_id"`
	LineItemIDs   []string `json:"line_item_ids,omitempty"`
	ReservationID string   `json:"reservation_id,omitempty"`
}

type SummaryRecomputedPayload struct {
	OrderID      string `json:"order_id"`
	AllAllocated bool   `json:"all_allocated"`
	HasMovements bool   `json:"has_movements"`
	Total        int64  `json:"total"`
}

type AdjustmentPayload struct {
	OrderID string `json:"order_id"`
	State   string `json:"state"` // open | closed
}
