package summary

import "github.com/ariefcatur/go-order-summary/internal/orders"

// ItemAllocated: item dianggap teralokasi kalau tidak perlu tracking inventory,
// sudah fully fulfilled, atau total reservation == qty outstanding.
func ItemAllocated(item orders.LineItem, inventory VariantInventoryMap, ix ReservationIndex) bool {
	if item.VariantID == "" {
		return true
	}
	if inv, ok := inventory[item.VariantID]; !ok || !inv.Tracked() {
		return true
	}
	if item.Quantity == item.FulfilledQuantity {
		return true
	}
	reserved, ok := ix.Reserved(item.ID)
	return ok && reserved == item.Outstanding()
}

// AllAllocated: AND atas semua item; order tanpa item = true.
func AllAllocated(items []orders.LineItem, inventory VariantInventoryMap, ix ReservationIndex) bool {
	for _, it := range items {
		if !ItemAllocated(it, inventory, ix) {
			return false
		}
	}
	return true
}
