package summary

import "github.com/ariefcatur/go-order-summary/internal/orders"

// Flags: feature flag yang dulu dibaca global, sekarang di-inject saat konstruksi.
type Flags struct {
	InventoryEnabled bool
}

// ReservationIndex: line_item_id -> reservations (urutan insert dipertahankan).
type ReservationIndex map[string][]orders.ReservationItem

func IndexReservations(reservations []orders.ReservationItem, flags Flags) ReservationIndex {
	ix := ReservationIndex{}
	if len(reservations) == 0 || !flags.InventoryEnabled {
		return ix
	}
	for _, r := range reservations {
		if r.LineItemID == "" {
			continue
		}
		ix[r.LineItemID] = append(ix[r.LineItemID], r)
	}
	return ix
}

// Reserved mengembalikan total qty ter-reserve dan apakah ada reservation sama sekali.
func (ix ReservationIndex) Reserved(lineItemID string) (int, bool) {
	rs, ok := ix[lineItemID]
	if !ok {
		return 0, false
	}
	total := 0
	for _, r := range rs {
		total += r.Quantity
	}
	return total, true
}
