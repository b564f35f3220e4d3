package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ariefcatur/go-order-summary/internal/commerce"
	kafkax "github.com/ariefcatur/go-order-summary/internal/kafka"
	"github.com/ariefcatur/go-order-summary/internal/orders"
	"github.com/ariefcatur/go-order-summary/internal/summary"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSummaries struct {
	sum     summary.Summary
	err     error
	view    summary.AdjustmentView
	changed bool
}

func (s *stubSummaries) Get(context.Context, string) (summary.Summary, error) { return s.sum, s.err }

func (s *stubSummaries) Recompute(context.Context, string) (summary.Summary, error) {
	return s.sum, s.err
}

func (s *stubSummaries) OpenAdjustment(context.Context, string) (summary.AdjustmentView, bool, error) {
	return s.view, s.changed, s.err
}

func (s *stubSummaries) CloseAdjustment(context.Context, string) (bool, error) {
	return s.changed, s.err
}

type capturePublisher struct{ values [][]byte }

func (c *capturePublisher) Publish(_, value []byte, _ ...kafkago.Header) {
	c.values = append(c.values, value)
}

func serve(t *testing.T, h *SummaryHandler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := NewRouter()
	h.Register(r)
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestGetSummary(t *testing.T) {
	stub := &stubSummaries{sum: summary.Summary{
		OrderID:      "order_1",
		AllAllocated: false,
		Indicator:    &summary.Indicator{Variant: "danger", Title: summary.TitleNotFullyAllocated, Clickable: true},
	}}

	w := serve(t, &SummaryHandler{Summaries: stub}, http.MethodGet, "/orders/order_1/summary")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var got summary.Summary
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, "order_1", got.OrderID)
	require.NotNil(t, got.Indicator)
	assert.True(t, got.Indicator.Clickable)
}

func TestSummaryErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", fmt.Errorf("load order: %w", commerce.ErrNotFound), http.StatusNotFound},
		{"upstream", &commerce.StatusError{Code: 500, Path: "/admin/orders/x"}, http.StatusBadGateway},
		{"other", errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, &SummaryHandler{Summaries: &stubSummaries{err: tt.err}}, http.MethodGet, "/orders/x/summary")
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestInternalErrorDoesNotLeakDetail(t *testing.T) {
	w := serve(t, &SummaryHandler{Summaries: &stubSummaries{err: errors.New("dial tcp 10.0.0.5:5432: db down")}}, http.MethodGet, "/orders/x/summary")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
	assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
}

func TestOpenAdjustment(t *testing.T) {
	pub := &capturePublisher{}
	stub := &stubSummaries{
		changed: true,
		view:    summary.AdjustmentView{OrderID: "order_1", State: summary.AdjustmentOpen},
	}

	w := serve(t, &SummaryHandler{Summaries: stub, Producer: pub, Service: "order-summary"},
		http.MethodPost, "/orders/order_1/reservation-adjustment")

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, pub.values, 1)
	var env orders.Envelope
	require.NoError(t, kafkax.UnmarshalEnvelope(pub.values[0], &env))
	assert.Equal(t, orders.EventAdjustmentOpened, env.EventType)
	assert.NotEmpty(t, env.TraceID)
}

func TestOpenAdjustmentNotAllowed(t *testing.T) {
	pub := &capturePublisher{}
	stub := &stubSummaries{err: summary.ErrAdjustmentNotAllowed}

	w := serve(t, &SummaryHandler{Summaries: stub, Producer: pub}, http.MethodPost, "/orders/order_1/reservation-adjustment")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Empty(t, pub.values)
}

func TestCloseAdjustment(t *testing.T) {
	pub := &capturePublisher{}

	w := serve(t, &SummaryHandler{Summaries: &stubSummaries{changed: true}, Producer: pub},
		http.MethodDelete, "/orders/order_1/reservation-adjustment")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Len(t, pub.values, 1)

	w = serve(t, &SummaryHandler{Summaries: &stubSummaries{changed: false}, Producer: pub},
		http.MethodDelete, "/orders/order_1/reservation-adjustment")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Len(t, pub.values, 1)
}

type stubLister struct {
	list      []orders.Order
	count     int
	gotLimit  int
	gotOffset int
}

func (s *stubLister) ListOrders(_ context.Context, limit, offset int) ([]orders.Order, int, error) {
	s.gotLimit, s.gotOffset = limit, offset
	return s.list, s.count, nil
}

func TestListOrders(t *testing.T) {
	lister := &stubLister{
		list: []orders.Order{{
			ID:                "order_1",
			DisplayID:         42,
			Email:             "ana@example.com",
			ShippingAddress:   &orders.Name{FirstName: "Ana", LastName: "Lee"},
			CurrencyCode:      "eur",
			Total:             12345,
			PaymentStatus:     "captured",
			FulfillmentStatus: "partially_shipped",
			CreatedAt:         time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
		}},
		count: 1,
	}
	r := NewRouter()
	(&OrdersHandler{Orders: lister}).Register(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders?limit=500&offset=10", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 20, lister.gotLimit)
	assert.Equal(t, 10, lister.gotOffset)

	var resp ListOrdersResp
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Orders, 1)
	row := resp.Orders[0]
	assert.Equal(t, "#42", row.DisplayID)
	assert.Equal(t, "05 Mar 2024", row.CreatedAt)
	assert.Equal(t, "Ana", row.CustomerFirst)
	assert.Equal(t, "Lee", row.CustomerLast)
	assert.Equal(t, "Partially shipped", row.Fulfillment)
	assert.Equal(t, "Paid", row.Payment.Title)
	assert.Equal(t, "123.45 EUR", row.Total)
	assert.Equal(t, "EUR", row.Currency)
}
