package summary

import (
	"github.com/ariefcatur/go-order-summary/internal/display"
	"github.com/ariefcatur/go-order-summary/internal/orders"
)

const (
	TitleAllocated         = "Allocated"
	TitleNotFullyAllocated = "Not fully allocated"
	TitleTotal             = "Total"
	TitleOriginalTotal     = "Original Total"
)

// Indicator: status alokasi di header summary. Clickable=false berarti inert.
type Indicator struct {
	Variant   string `json:"variant"`
	Title     string `json:"title"`
	Clickable bool   `json:"clickable"`
}

type LineRow struct {
	Item             orders.LineItem          `json:"item"`
	UnitPrice        string                   `json:"unit_price"`
	Total            string                   `json:"total"`
	Reservations     []orders.ReservationItem `json:"reservations,omitempty"`
	ReservedQuantity int                      `json:"reserved_quantity"`
	Allocated        bool                     `json:"allocated"`
	Allocatable      bool                     `json:"allocatable"`
}

type TotalRow struct {
	Title     string `json:"title"`
	Amount    int64  `json:"amount"`
	Formatted string `json:"formatted"`
	Large     bool   `json:"large,omitempty"`
}

type PaymentDetails struct {
	ManualRefund  string `json:"manual_refund"`
	SwapAmount    string `json:"swap_amount"`
	SwapRefund    string `json:"swap_refund"`
	ReturnRefund  string `json:"return_refund"`
	PaidTotal     string `json:"paid_total"`
	RefundedTotal string `json:"refunded_total"`
}

type Summary struct {
	OrderID      string          `json:"order_id"`
	CurrencyCode string          `json:"currency_code"`
	Status       orders.Status   `json:"status"`
	Lines        []LineRow       `json:"lines"`
	Totals       []TotalRow      `json:"totals"`
	Payment      PaymentDetails  `json:"payment"`
	Rollup       Rollup          `json:"rollup"`
	AllAllocated bool            `json:"all_allocated"`
	Allocatable  bool            `json:"allocatable"`
	Indicator    *Indicator      `json:"indicator,omitempty"`
	Adjustment   AdjustmentState `json:"adjustment"`
}

// Derived: hasil komponen lain yang digabung presenter.
type Derived struct {
	Index              ReservationIndex
	Inventory          VariantInventoryMap
	ReservationsLoaded bool
	AllAllocated       bool
	Rollup             Rollup
}

type Presenter struct {
	Flags Flags
}

func (p Presenter) Present(o orders.Order, d Derived) Summary {
	allocatable := orders.Allocatable(o.Status)
	cur := o.CurrencyCode

	lines := make([]LineRow, 0, len(o.Items))
	for _, it := range o.Items {
		reserved, _ := d.Index.Reserved(it.ID)
		lines = append(lines, LineRow{
			Item:             it,
			UnitPrice:        display.FormatAmount(it.UnitPrice, cur),
			Total:            display.FormatAmount(it.UnitPrice*int64(it.Quantity), cur),
			Reservations:     d.Index[it.ID],
			ReservedQuantity: reserved,
			Allocated:        ItemAllocated(it, d.Inventory, d.Index),
			Allocatable:      allocatable,
		})
	}

	totalTitle := TitleTotal
	if d.Rollup.HasMovements {
		totalTitle = TitleOriginalTotal
	}

	s := Summary{
		OrderID:      o.ID,
		CurrencyCode: cur,
		Status:       o.Status,
		Lines:        lines,
		Totals: []TotalRow{
			totalRow("Subtotal", o.Subtotal, cur, false),
			totalRow("Shipping", o.ShippingTotal, cur, false),
			totalRow("Tax", o.TaxTotal, cur, false),
			totalRow(totalTitle, o.Total, cur, true),
		},
		Payment: PaymentDetails{
			ManualRefund:  display.FormatAmount(d.Rollup.ManualRefund, cur),
			SwapAmount:    display.FormatAmount(d.Rollup.SwapAmount, cur),
			SwapRefund:    display.FormatAmount(d.Rollup.SwapRefund, cur),
			ReturnRefund:  display.FormatAmount(d.Rollup.ReturnRefund, cur),
			PaidTotal:     display.FormatAmount(o.PaidTotal, cur),
			RefundedTotal: display.FormatAmount(o.RefundedTotal, cur),
		},
		Rollup:       d.Rollup,
		AllAllocated: d.AllAllocated,
		Allocatable:  allocatable,
		Adjustment:   AdjustmentClosed,
	}

	if p.Flags.InventoryEnabled && d.ReservationsLoaded {
		s.Indicator = indicator(d.AllAllocated, allocatable)
	}
	return s
}

func indicator(allAllocated, allocatable bool) *Indicator {
	if allAllocated || !allocatable {
		return &Indicator{Variant: display.VariantSuccess, Title: TitleAllocated}
	}
	return &Indicator{Variant: display.VariantDanger, Title: TitleNotFullyAllocated, Clickable: true}
}

func totalRow(title string, amount int64, currency string, large bool) TotalRow {
	return TotalRow{
		Title:     title,
		Amount:    amount,
		Formatted: display.FormatAmount(amount, currency),
		Large:     large,
	}
}
