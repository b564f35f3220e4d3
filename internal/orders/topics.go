package orders

const (
	TopicReservationChanged = "inventory.reservation.changed"
	TopicSummaryRecomputed  = "order.summary.recomputed"
	TopicAdjustment         = "order.reservation_adjustment"
)

// Partition key = order_id, supaya semua event 1 order maintain urutan.
func PartitionKey(orderID string) []byte { return []byte(orderID) }
