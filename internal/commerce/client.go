package commerce

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/ariefcatur/go-order-summary/internal/orders"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var ErrNotFound = errors.New("not found")

// StatusError: response non-2xx selain 404.
type StatusError struct {
	Code int
	Path string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("commerce api %s: status %d", e.Path, e.Code)
}

// Client: admin API commerce (JSON over HTTP).
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func New(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

type orderRes struct {
	Order orders.Order `json:"order"`
}

type ordersRes struct {
	Orders []orders.Order `json:"orders"`
	Count  int            `json:"count"`
	Offset int            `json:"offset"`
	Limit  int            `json:"limit"`
}

type variantInventoryRes struct {
	Variant orders.VariantInventory `json:"variant"`
}

func (c *Client) GetOrder(ctx context.Context, orderID string) (orders.Order, error) {
	var res orderRes
	if err := c.get(ctx, "/admin/orders/"+url.PathEscape(orderID), nil, &res); err != nil {
		return orders.Order{}, err
	}
	return res.Order, nil
}

// ListOrders: satu halaman order untuk tabel; total = count dari API.
func (c *Client) ListOrders(ctx context.Context, limit, offset int) ([]orders.Order, int, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	var res ordersRes
	if err := c.get(ctx, "/admin/orders", q, &res); err != nil {
		return nil, 0, err
	}
	return res.Orders, res.Count, nil
}

func (c *Client) GetVariantInventory(ctx context.Context, variantID string) (orders.VariantInventory, error) {
	var res variantInventoryRes
	if err := c.get(ctx, "/admin/variants/"+url.PathEscape(variantID)+"/inventory", nil, &res); err != nil {
		return orders.VariantInventory{}, err
	}
	return res.Variant, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	u := c.BaseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("commerce api %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("commerce api %s: %w", path, ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &StatusError{Code: resp.StatusCode, Path: path}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
