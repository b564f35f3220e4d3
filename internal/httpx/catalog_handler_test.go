package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ariefcatur/go-order-summary/internal/commerce"
	"github.com/ariefcatur/go-order-summary/internal/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	products []commerce.Product
	users    []commerce.User
	err      error
}

func (s *stubCatalog) ListProducts(context.Context, int, int) ([]commerce.Product, int, error) {
	return s.products, len(s.products), s.err
}

func (s *stubCatalog) ListUsers(context.Context) ([]commerce.User, error) {
	return s.users, s.err
}

func serveCatalog(t *testing.T, c CatalogSource, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := NewRouter()
	(&CatalogHandler{Catalog: c}).Register(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestListProductsStatusVariant(t *testing.T) {
	stub := &stubCatalog{products: []commerce.Product{
		{ID: "prod_1", Title: "Shirt", Status: "published"},
		{ID: "prod_2", Title: "Hat", Status: "draft"},
	}}

	w := serveCatalog(t, stub, "/products")

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Products []ProductRow `json:"products"`
		Count    int          `json:"count"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Products, 2)
	assert.Equal(t, display.VariantSuccess, resp.Products[0].StatusVariant)
	assert.Equal(t, display.VariantDefault, resp.Products[1].StatusVariant)
	assert.Equal(t, 2, resp.Count)
}

func TestListUsersBadge(t *testing.T) {
	stub := &stubCatalog{users: []commerce.User{
		{ID: "usr_1", Email: "a@example.com", Role: "admin", CreatedAt: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{ID: "usr_2", Email: "b@example.com", Role: "member", Status: "pending"},
		{ID: "usr_3", Email: "c@example.com", Role: "member", Status: "rejected"},
	}}

	w := serveCatalog(t, stub, "/users")

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Users []UserRow `json:"users"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Users, 3)
	assert.Equal(t, "Active", resp.Users[0].Badge.Title)
	assert.Equal(t, "Mar 5 2024", resp.Users[0].Joined)
	assert.Equal(t, "grey", resp.Users[1].Badge.Variant)
	assert.Equal(t, "Rejected", resp.Users[2].Badge.Title)
}

func TestCatalogUpstreamError(t *testing.T) {
	w := serveCatalog(t, &stubCatalog{err: &commerce.StatusError{Code: 503, Path: "/admin/users"}}, "/users")

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
