package redisx

import (
	"context"
	"fmt"
	"github.com/redis/go-redis/v9"
	"time"
)

func New(addr string) *redis.Client {
	r := redis.NewClient(&redis.Options{
		Addr:         addr,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	return r
}

// Dedup: penanda event yang sudah selesai diproses, per service.
type Dedup struct {
	Redis   *redis.Client
	Service string
}

func (d *Dedup) Seen(ctx context.Context, eventID string) (bool, error) {
	n, err := d.Redis.Exists(ctx, fmt.Sprintf(KeyDedup, d.Service, eventID)).Result()
	return n > 0, err
}

// Mark dipanggil hanya setelah proses sukses, supaya redelivery tetap diproses.
func (d *Dedup) Mark(ctx context.Context, eventID string) error {
	return d.Redis.Set(ctx, fmt.Sprintf(KeyDedup, d.Service, eventID), "1", TTLDedup).Err()
}
