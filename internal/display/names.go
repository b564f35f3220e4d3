package display

import "github.com/ariefcatur/go-order-summary/internal/orders"

// ResolveCustomerName: per field, ambil dari customer dulu, lalu shipping address.
// ok=false kalau dua-duanya kosong.
func ResolveCustomerName(o orders.Order) (first, last string, ok bool) {
	first = pick(o.Customer, o.ShippingAddress, func(n *orders.Name) string { return n.FirstName })
	last = pick(o.Customer, o.ShippingAddress, func(n *orders.Name) string { return n.LastName })
	return first, last, first != "" || last != ""
}

func pick(primary, fallback *orders.Name, field func(*orders.Name) string) string {
	if primary != nil {
		if v := field(primary); v != "" {
			return v
		}
	}
	if fallback != nil {
		return field(fallback)
	}
	return ""
}
