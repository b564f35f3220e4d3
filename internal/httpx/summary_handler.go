package httpx

import (
	"context"
	kafkax "github.com/ariefcatur/go-order-summary/internal/kafka"
	"github.com/ariefcatur/go-order-summary/internal/orders"
	"github.com/ariefcatur/go-order-summary/internal/summary"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	kafkago "github.com/segmentio/kafka-go"
	"net/http"
	"time"
)

type SummaryService interface {
	Get(ctx context.Context, orderID string) (summary.Summary, error)
	Recompute(ctx context.Context, orderID string) (summary.Summary, error)
	OpenAdjustment(ctx context.Context, orderID string) (summary.AdjustmentView, bool, error)
	CloseAdjustment(ctx context.Context, orderID string) (bool, error)
}

type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

type SummaryHandler struct {
	Summaries SummaryService
	Producer  Publisher // opsional, event adjustment opened/closed
	Service   string
}

func (h *SummaryHandler) Register(r chi.Router) {
	r.Get("/orders/{id}/summary", h.getSummary)
	r.Post("/orders/{id}/summary/recompute", h.recompute)
	r.Post("/orders/{id}/reservation-adjustment", h.openAdjustment)
	r.Delete("/orders/{id}/reservation-adjustment", h.closeAdjustment)
}

func (h *SummaryHandler) getSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	s, err := h.Summaries.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *SummaryHandler) recompute(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	s, err := h.Summaries.Recompute(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *SummaryHandler) openAdjustment(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	view, changed, err := h.Summaries.OpenAdjustment(ctx, orderID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if changed {
		h.publish(r, orderID, orders.EventAdjustmentOpened, summary.AdjustmentOpen)
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *SummaryHandler) closeAdjustment(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	changed, err := h.Summaries.CloseAdjustment(ctx, orderID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if changed {
		h.publish(r, orderID, orders.EventAdjustmentClosed, summary.AdjustmentClosed)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SummaryHandler) publish(r *http.Request, orderID, eventType string, st summary.AdjustmentState) {
	if h.Producer == nil {
		return
	}
	ev := kafkax.NewEnvelope(eventType, h.Service, orderID, middleware.GetReqID(r.Context()),
		orders.AdjustmentPayload{OrderID: orderID, State: string(st)})
	h.Producer.Publish(orders.PartitionKey(orderID), kafkax.MustMarshal(ev), kafkax.EventHeaders(ev)...)
}
