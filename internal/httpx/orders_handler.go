package httpx

import (
	"context"
	"fmt"
	"github.com/ariefcatur/go-order-summary/internal/display"
	"github.com/ariefcatur/go-order-summary/internal/orders"
	"github.com/go-chi/chi/v5"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type OrderLister interface {
	ListOrders(ctx context.Context, limit, offset int) ([]orders.Order, int, error)
}

type OrdersHandler struct {
	Orders OrderLister
}

// OrderRow: satu baris tabel order di dashboard.
type OrderRow struct {
	ID            string        `json:"id"`
	DisplayID     string        `json:"display_id"`
	CreatedAt     string        `json:"created_at"`
	CustomerFirst string        `json:"customer_first_name,omitempty"`
	CustomerLast  string        `json:"customer_last_name,omitempty"`
	Email         string        `json:"email"`
	Fulfillment   string        `json:"fulfillment"`
	Payment       display.Badge `json:"payment"`
	Total         string        `json:"total"`
	Currency      string        `json:"currency"`
}

type ListOrdersResp struct {
	Orders []OrderRow `json:"orders"`
	Count  int        `json:"count"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *OrdersHandler) Register(r chi.Router) {
	r.Get("/orders", h.listOrders)
}

func (h *OrdersHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 20)
	if limit == 0 || limit > 100 {
		limit = 20
	}
	offset := queryInt(r, "offset", 0)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	list, count, err := h.Orders.ListOrders(ctx, limit, offset)
	if err != nil {
		writeError(w, r, err)
		return
	}
	rows := make([]OrderRow, 0, len(list))
	for _, o := range list {
		rows = append(rows, toOrderRow(o))
	}
	writeJSON(w, http.StatusOK, ListOrdersResp{Orders: rows, Count: count, Limit: limit, Offset: offset})
}

func toOrderRow(o orders.Order) OrderRow {
	first, last, _ := display.ResolveCustomerName(o)
	row := OrderRow{
		ID:            o.ID,
		DisplayID:     fmt.Sprintf("#%d", o.DisplayID),
		CustomerFirst: first,
		CustomerLast:  last,
		Email:         o.Email,
		Fulfillment:   display.FulfillmentStatusLabel(o.FulfillmentStatus),
		Payment:       display.PaymentStatusBadge(o.PaymentStatus),
		Total:         display.FormatAmount(o.Total, o.CurrencyCode),
		Currency:      strings.ToUpper(o.CurrencyCode),
	}
	if !o.CreatedAt.IsZero() {
		row.CreatedAt = o.CreatedAt.Format("02 Jan 2006")
	}
	return row
}

func queryInt(r *http.Request, key string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v < 0 {
		return def
	}
	return v
}
