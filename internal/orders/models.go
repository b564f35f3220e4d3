package orders

import "time"

type Name struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type Order struct {
	ID                string     `json:"id"`
	DisplayID         int        `json:"display_id"`
	Email             string     `json:"email"`
	Customer          *Name      `json:"customer,omitempty"`
	ShippingAddress   *Name      `json:"shipping_address,omitempty"`
	Items             []LineItem `json:"items"`
	CurrencyCode      string     `json:"currency_code"`
	Status            Status     `json:"status"`
	PaymentStatus     string     `json:"payment_status"`
	FulfillmentStatus string     `json:"fulfillment_status"`
	Subtotal          int64      `json:"subtotal"`
	ShippingTotal     int64      `json:"shipping_total"`
	TaxTotal          int64      `json:"tax_total"`
	Total             int64      `json:"total"`
	PaidTotal         int64      `json:"paid_total"`
	RefundedTotal     int64      `json:"refunded_total"`
	Refunds           []Refund   `json:"refunds"`
	Swaps             []Swap     `json:"swaps"`
	CreatedAt         time.Time  `json:"created_at"`
}

type LineItem struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	VariantID         string `json:"variant_id,omitempty"` // kosong = tanpa variant
	Quantity          int    `json:"quantity"`
	FulfilledQuantity int    `json:"fulfilled_quantity"`
	UnitPrice         int64  `json:"unit_price"`
}

// Outstanding: qty yang belum di-fulfill.
func (li LineItem) Outstanding() int { return li.Quantity - li.FulfilledQuantity }

type ReservationItem struct {
	ID              string `json:"id"`
	LineItemID      string `json:"line_item_id,omitempty"`
	InventoryItemID string `json:"inventory_item_id"`
	LocationID      string `json:"location_id"`
	Quantity        int    `json:"quantity"`
}

type InventoryLocation struct {
	LocationID        string `json:"location_id"`
	StockedQuantity   int    `json:"stocked_quantity"`
	ReservedQuantity  int    `json:"reserved_quantity"`
	AvailableQuantity int    `json:"available_quantity"`
}

type InventoryEntry struct {
	InventoryItemID string              `json:"inventory_item_id"`
	Locations       []InventoryLocation `json:"location_levels"`
}

// VariantInventory: snapshot inventory per variant dari commerce API.
type VariantInventory struct {
	VariantID string           `json:"id"`
	Inventory []InventoryEntry `json:"inventory"`
}

// Tracked: true kalau variant punya minimal satu inventory entry.
func (v VariantInventory) Tracked() bool { return len(v.Inventory) > 0 }

type RefundReason string

const (
	RefundOther    RefundReason = "other"
	RefundDiscount RefundReason = "discount"
	RefundReturn   RefundReason = "return"
	RefundSwap     RefundReason = "swap"
)

type Refund struct {
	Amount int64        `json:"amount"`
	Reason RefundReason `json:"reason"`
}

type Swap struct {
	DifferenceDue int64 `json:"difference_due"`
}
