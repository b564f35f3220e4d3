package summary

import "github.com/ariefcatur/go-order-summary/internal/orders"

type Rollup struct {
	ManualRefund int64 `json:"manual_refund"`
	ReturnRefund int64 `json:"return_refund"`
	SwapRefund   int64 `json:"swap_refund"`
	SwapAmount   int64 `json:"swap_amount"`
	HasMovements bool  `json:"has_movements"`
}

// RollupFinancials menjumlah refund per kategori alasan dan selisih swap.
func RollupFinancials(refunds []orders.Refund, swaps []orders.Swap) Rollup {
	var r Rollup
	for _, s := range swaps {
		r.SwapAmount += s.DifferenceDue
	}
	for _, ref := range refunds {
		switch ref.Reason {
		case orders.RefundOther, orders.RefundDiscount:
			r.ManualRefund += ref.Amount
		case orders.RefundReturn:
			r.ReturnRefund += ref.Amount
		case orders.RefundSwap:
			r.SwapRefund += ref.Amount
		}
	}
	// movement = salah satu total tidak nol (bukan jumlahnya, supaya +x/-x tidak saling hapus)
	r.HasMovements = r.SwapAmount != 0 || r.ManualRefund != 0 || r.SwapRefund != 0 || r.ReturnRefund != 0
	return r
}
