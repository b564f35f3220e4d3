package summary

import (
	"errors"
	"github.com/ariefcatur/go-order-summary/internal/orders"
)

type AdjustmentState string

const (
	AdjustmentClosed AdjustmentState = "closed"
	AdjustmentOpen   AdjustmentState = "open"
)

var ErrAdjustmentNotAllowed = errors.New("reservation adjustment not allowed")

// Adjustment: state machine closed -> open -> closed.
type Adjustment struct {
	State AdjustmentState
}

// Open hanya boleh dari indikator yang clickable. Open saat sudah open = no-op.
func (a *Adjustment) Open(ind *Indicator) (changed bool, err error) {
	if a.State == AdjustmentOpen {
		return false, nil
	}
	if ind == nil || !ind.Clickable {
		return false, ErrAdjustmentNotAllowed
	}
	a.State = AdjustmentOpen
	return true, nil
}

func (a *Adjustment) Close() (changed bool) {
	changed = a.State == AdjustmentOpen
	a.State = AdjustmentClosed
	return changed
}

// AdjustmentView: data yang diteruskan ke surface reserve-items saat open.
type AdjustmentView struct {
	OrderID string            `json:"order_id"`
	State   AdjustmentState   `json:"state"`
	Index   ReservationIndex  `json:"reservations_by_line_item"`
	Items   []orders.LineItem `json:"items"`
}
