package summary

import (
	"context"
	"errors"
	"fmt"
	"github.com/ariefcatur/go-order-summary/internal/logging"
	"github.com/ariefcatur/go-order-summary/internal/orders"
)

var ErrNoAdjustmentStore = errors.New("reservation adjustment state store not configured")

type OrderSource interface {
	GetOrder(ctx context.Context, orderID string) (orders.Order, error)
}

type ReservationSource interface {
	ListByLineItems(ctx context.Context, lineItemIDs []string) ([]orders.ReservationItem, error)
}

// Cache: opsional, nil = selalu recompute.
type Cache interface {
	GetSummary(ctx context.Context, orderID string) (Summary, bool, error)
	SetSummary(ctx context.Context, s Summary) error
	DeleteSummary(ctx context.Context, orderID string) error
}

// AdjustmentStore: opsional. Tanpa store, state selalu closed dan aksi open/close ditolak.
type AdjustmentStore interface {
	GetAdjustment(ctx context.Context, orderID string) (AdjustmentState, error)
	SetAdjustment(ctx context.Context, orderID string, st AdjustmentState) error
}

type Service struct {
	Orders       OrderSource
	Reservations ReservationSource
	Fetcher      *Fetcher
	Cache        Cache
	Adjustments  AdjustmentStore
	Flags        Flags
}

func NewService(o OrderSource, r ReservationSource, inv InventoryClient, cache Cache, adj AdjustmentStore, flags Flags, concurrency int) *Service {
	return &Service{
		Orders:       o,
		Reservations: r,
		Fetcher:      &Fetcher{Client: inv, Flags: flags, Concurrency: concurrency},
		Cache:        cache,
		Adjustments:  adj,
		Flags:        flags,
	}
}

// Get: cache dulu, fallback Recompute. State adjustment selalu dibaca fresh.
func (s *Service) Get(ctx context.Context, orderID string) (Summary, error) {
	if s.Cache != nil {
		if sum, ok, err := s.Cache.GetSummary(ctx, orderID); err == nil && ok {
			return s.withAdjustment(ctx, sum), nil
		} else if err != nil {
			logging.Warn(ctx).Err(err).Str("orderId", orderID).Msg("summary cache read failed")
		}
	}
	sum, err := s.Recompute(ctx, orderID)
	if err != nil {
		return Summary{}, err
	}
	return s.withAdjustment(ctx, sum), nil
}

// Recompute: entry point eksplisit setiap order / flag / reservation berubah.
// Hasil lama diganti utuh, tidak ada mutasi in-place.
func (s *Service) Recompute(ctx context.Context, orderID string) (Summary, error) {
	o, err := s.Orders.GetOrder(ctx, orderID)
	if err != nil {
		return Summary{}, fmt.Errorf("load order %s: %w", orderID, err)
	}

	var (
		reservations []orders.ReservationItem
		loaded       bool
	)
	if s.Flags.InventoryEnabled {
		ids := make([]string, 0, len(o.Items))
		for _, it := range o.Items {
			ids = append(ids, it.ID)
		}
		reservations, err = s.Reservations.ListByLineItems(ctx, ids)
		if err != nil {
			return Summary{}, fmt.Errorf("load reservations %s: %w", orderID, err)
		}
		loaded = true
	}

	ix := IndexReservations(reservations, s.Flags)
	inv := s.Fetcher.Fetch(ctx, o.Items)

	d := Derived{
		Index:              ix,
		Inventory:          inv,
		ReservationsLoaded: loaded,
		AllAllocated:       AllAllocated(o.Items, inv, ix),
		Rollup:             RollupFinancials(o.Refunds, o.Swaps),
	}
	sum := Presenter{Flags: s.Flags}.Present(o, d)

	if s.Cache != nil {
		if err := s.Cache.SetSummary(ctx, sum); err != nil {
			logging.Warn(ctx).Err(err).Str("orderId", orderID).Msg("summary cache write failed")
		}
	}
	logging.Debug(ctx).Str("orderId", orderID).Bool("allAllocated", sum.AllAllocated).
		Bool("hasMovements", sum.Rollup.HasMovements).Int("variants", len(inv)).Msg("summary recomputed")
	return sum, nil
}

func (s *Service) Invalidate(ctx context.Context, orderID string) error {
	if s.Cache == nil {
		return nil
	}
	return s.Cache.DeleteSummary(ctx, orderID)
}

// OpenAdjustment: klik indikator. Selalu pakai data fresh supaya verdict akurat.
func (s *Service) OpenAdjustment(ctx context.Context, orderID string) (AdjustmentView, bool, error) {
	sum, err := s.Recompute(ctx, orderID)
	if err != nil {
		return AdjustmentView{}, false, err
	}
	if s.Adjustments == nil {
		return AdjustmentView{}, false, ErrNoAdjustmentStore
	}
	st, err := s.Adjustments.GetAdjustment(ctx, orderID)
	if err != nil {
		return AdjustmentView{}, false, fmt.Errorf("load adjustment state: %w", err)
	}
	adj := Adjustment{State: st}
	changed, err := adj.Open(sum.Indicator)
	if err != nil {
		return AdjustmentView{}, false, err
	}
	if changed {
		if err := s.Adjustments.SetAdjustment(ctx, orderID, adj.State); err != nil {
			return AdjustmentView{}, false, fmt.Errorf("save adjustment state: %w", err)
		}
	}

	ix := ReservationIndex{}
	items := make([]orders.LineItem, 0, len(sum.Lines))
	for _, l := range sum.Lines {
		items = append(items, l.Item)
		if len(l.Reservations) > 0 {
			ix[l.Item.ID] = l.Reservations
		}
	}
	return AdjustmentView{OrderID: orderID, State: adj.State, Index: ix, Items: items}, changed, nil
}

func (s *Service) CloseAdjustment(ctx context.Context, orderID string) (bool, error) {
	if s.Adjustments == nil {
		return false, ErrNoAdjustmentStore
	}
	st, err := s.Adjustments.GetAdjustment(ctx, orderID)
	if err != nil {
		return false, fmt.Errorf("load adjustment state: %w", err)
	}
	adj := Adjustment{State: st}
	if !adj.Close() {
		return false, nil
	}
	if err := s.Adjustments.SetAdjustment(ctx, orderID, adj.State); err != nil {
		return false, fmt.Errorf("save adjustment state: %w", err)
	}
	return true, nil
}

func (s *Service) withAdjustment(ctx context.Context, sum Summary) Summary {
	sum.Adjustment = AdjustmentClosed
	if s.Adjustments == nil {
		return sum
	}
	st, err := s.Adjustments.GetAdjustment(ctx, sum.OrderID)
	if err != nil {
		logging.Warn(ctx).Err(err).Str("orderId", sum.OrderID).Msg("adjustment state read failed")
		return sum
	}
	if st == AdjustmentOpen {
		sum.Adjustment = AdjustmentOpen
	}
	return sum
}
