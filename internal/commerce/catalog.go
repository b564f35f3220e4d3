package commerce

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

type Product struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Status    string `json:"status"` // draft | proposed | published | rejected
	Thumbnail string `json:"thumbnail,omitempty"`
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status,omitempty"` // pending | rejected | kosong = aktif
	CreatedAt time.Time `json:"created_at"`
}

type productsRes struct {
	Products []Product `json:"products"`
	Count    int       `json:"count"`
}

type usersRes struct {
	Users []User `json:"users"`
}

func (c *Client) ListProducts(ctx context.Context, limit, offset int) ([]Product, int, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	var res productsRes
	if err := c.get(ctx, "/admin/products", q, &res); err != nil {
		return nil, 0, err
	}
	return res.Products, res.Count, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var res usersRes
	if err := c.get(ctx, "/admin/users", nil, &res); err != nil {
		return nil, err
	}
	return res.Users, nil
}
