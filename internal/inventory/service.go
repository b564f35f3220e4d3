package inventory

import (
	"context"
	"errors"
	"github.com/ariefcatur/go-order-summary/internal/commerce"
	kafkax "github.com/ariefcatur/go-order-summary/internal/kafka"
	"github.com/ariefcatur/go-order-summary/internal/logging"
	"github.com/ariefcatur/go-order-summary/internal/orders"
	"github.com/ariefcatur/go-order-summary/internal/summary"
	kafkago "github.com/segmentio/kafka-go"
)

type Recomputer interface {
	Invalidate(ctx context.Context, orderID string) error
	Recompute(ctx context.Context, orderID string) (summary.Summary, error)
}

// Deduper: Seen dicek sebelum proses, Mark setelah publish sukses.
type Deduper interface {
	Seen(ctx context.Context, eventID string) (bool, error)
	Mark(ctx context.Context, eventID string) error
}

type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

// Service: bereaksi ke perubahan reservation dari inventory module.
type Service struct {
	Summaries   Recomputer
	Dedup       Deduper   // nil = tanpa dedup
	Producer    Publisher // publish order.summary.recomputed
	ServiceName string
}

// HandleReservationChanged: dipasang sebagai handler consumer.
func (s *Service) HandleReservationChanged(ctx context.Context, m kafkago.Message) error {
	// 1) decode envelope
	var env orders.Envelope
	if err := kafkax.UnmarshalEnvelope(m.Value, &env); err != nil {
		logging.Warn(ctx).Err(err).Int64("offset", m.Offset).Msg("skip malformed envelope")
		return nil // poison message, commit saja
	}
	if env.EventType != orders.EventReservationChanged {
		return nil
	} // ignore

	// 2) dedup via Redis (pakai event_id)
	if s.Dedup != nil {
		if seen, err := s.Dedup.Seen(ctx, env.EventID); err == nil && seen {
			return nil
		} else if err != nil {
			logging.Warn(ctx).Err(err).Str("eventId", env.EventID).Msg("dedup check failed, processing anyway")
		}
	}

	// 3) decode payload
	p, err := kafkax.UnwrapPayload[orders.ReservationChangedPayload](env.Payload)
	if err != nil {
		return err
	}
	if p.OrderID == "" {
		return s.markDone(ctx, env.EventID)
	}

	// 4) buang cache lama lalu recompute utuh
	if err := s.Summaries.Invalidate(ctx, p.OrderID); err != nil {
		logging.Warn(ctx).Err(err).Str("orderId", p.OrderID).Msg("invalidate summary cache")
	}
	sum, err := s.Summaries.Recompute(ctx, p.OrderID)
	if errors.Is(err, commerce.ErrNotFound) {
		logging.Info(ctx).Str("orderId", p.OrderID).Msg("order gone, skip recompute")
		return s.markDone(ctx, env.EventID)
	}
	if err != nil {
		return err
	}

	if err := s.publishRecomputed(sum, env.TraceID); err != nil {
		return err
	}
	return s.markDone(ctx, env.EventID)
}

// markDone: gagal tulis dedup key cukup di-log, event sudah selesai diproses.
func (s *Service) markDone(ctx context.Context, eventID string) error {
	if s.Dedup == nil {
		return nil
	}
	if err := s.Dedup.Mark(ctx, eventID); err != nil {
		logging.Warn(ctx).Err(err).Str("eventId", eventID).Msg("dedup mark failed")
	}
	return nil
}

func (s *Service) publishRecomputed(sum summary.Summary, trace string) error {
	var total int64
	if n := len(sum.Totals); n > 0 {
		total = sum.Totals[n-1].Amount
	}
	ev := kafkax.NewEnvelope(orders.EventSummaryRecomputed, s.ServiceName, sum.OrderID, trace,
		orders.SummaryRecomputedPayload{
			OrderID:      sum.OrderID,
			AllAllocated: sum.AllAllocated,
			HasMovements: sum.Rollup.HasMovements,
			Total:        total,
		})
	s.Producer.Publish(orders.PartitionKey(sum.OrderID), kafkax.MustMarshal(ev), kafkax.EventHeaders(ev)...)
	return nil
}
