package summary

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/ariefcatur/go-order-summary/internal/orders"
)

type fakeInventory struct {
	inv   map[string]orders.VariantInventory
	fail  map[string]bool
	calls atomic.Int32
	mu    sync.Mutex
	seen  []string
}

func (f *fakeInventory) GetVariantInventory(_ context.Context, variantID string) (orders.VariantInventory, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.seen = append(f.seen, variantID)
	f.mu.Unlock()
	if f.fail[variantID] {
		return orders.VariantInventory{}, errors.New("boom")
	}
	return f.inv[variantID], nil
}

type fakeOrders struct {
	order orders.Order
	err   error
	calls int
}

func (f *fakeOrders) GetOrder(_ context.Context, _ string) (orders.Order, error) {
	f.calls++
	return f.order, f.err
}

type fakeReservations struct {
	items []orders.ReservationItem
	err   error
	calls int
}

func (f *fakeReservations) ListByLineItems(_ context.Context, _ []string) ([]orders.ReservationItem, error) {
	f.calls++
	return f.items, f.err
}

type memCache struct {
	summaries map[string]Summary
}

func (m *memCache) GetSummary(_ context.Context, id string) (Summary, bool, error) {
	s, ok := m.summaries[id]
	return s, ok, nil
}

func (m *memCache) SetSummary(_ context.Context, s Summary) error {
	m.summaries[s.OrderID] = s
	return nil
}

func (m *memCache) DeleteSummary(_ context.Context, id string) error {
	delete(m.summaries, id)
	return nil
}

type memAdjustments struct {
	states map[string]AdjustmentState
}

func (m *memAdjustments) GetAdjustment(_ context.Context, id string) (AdjustmentState, error) {
	if st, ok := m.states[id]; ok {
		return st, nil
	}
	return AdjustmentClosed, nil
}

func (m *memAdjustments) SetAdjustment(_ context.Context, id string, st AdjustmentState) error {
	m.states[id] = st
	return nil
}

func tracked(variantID string) orders.VariantInventory {
	return orders.VariantInventory{
		VariantID: variantID,
		Inventory: []orders.InventoryEntry{{InventoryItemID: "iitem_" + variantID}},
	}
}

var enabled = Flags{InventoryEnabled: true}
