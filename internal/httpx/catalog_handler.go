package httpx

import (
	"context"
	"github.com/ariefcatur/go-order-summary/internal/commerce"
	"github.com/ariefcatur/go-order-summary/internal/display"
	"github.com/go-chi/chi/v5"
	"net/http"
	"time"
)

type CatalogSource interface {
	ListProducts(ctx context.Context, limit, offset int) ([]commerce.Product, int, error)
	ListUsers(ctx context.Context) ([]commerce.User, error)
}

// CatalogHandler: tabel produk & user di dashboard.
type CatalogHandler struct {
	Catalog CatalogSource
}

type ProductRow struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Status        string `json:"status"`
	StatusVariant string `json:"status_variant"`
	Thumbnail     string `json:"thumbnail,omitempty"`
}

type UserRow struct {
	ID     string        `json:"id"`
	Email  string        `json:"email"`
	Role   string        `json:"role"`
	Joined string        `json:"joined"`
	Badge  display.Badge `json:"badge"`
}

func (h *CatalogHandler) Register(r chi.Router) {
	r.Get("/products", h.listProducts)
	r.Get("/users", h.listUsers)
}

func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 20)
	if limit == 0 || limit > 100 {
		limit = 20
	}
	offset := queryInt(r, "offset", 0)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	list, count, err := h.Catalog.ListProducts(ctx, limit, offset)
	if err != nil {
		writeError(w, r, err)
		return
	}
	rows := make([]ProductRow, 0, len(list))
	for _, p := range list {
		rows = append(rows, ProductRow{
			ID:            p.ID,
			Title:         p.Title,
			Status:        p.Status,
			StatusVariant: display.ProductStatusVariant(p.Status),
			Thumbnail:     p.Thumbnail,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": rows, "count": count, "limit": limit, "offset": offset})
}

func (h *CatalogHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	users, err := h.Catalog.ListUsers(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}
	rows := make([]UserRow, 0, len(users))
	for _, u := range users {
		row := UserRow{ID: u.ID, Email: u.Email, Role: u.Role, Badge: display.UserStatusBadge(u.Status)}
		if !u.CreatedAt.IsZero() {
			row.Joined = u.CreatedAt.Format("Jan 2 2006")
		}
		rows = append(rows, row)
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": rows})
}
