package redisx

import "time"

const (
	// Cache summary view-model: summary:{order_id} -> JSON summary.Summary
	KeySummary = "summary:%s"

	// State modal reserve items: adjust:{order_id} -> open | closed
	KeyAdjustment = "adjust:%s"

	// Dedup event processing: dedup:{service}:{id} (id = event_id)
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLSummary    = 5 * time.Minute
	TTLAdjustment = time.Hour
	TTLDedup      = 48 * time.Hour
)
