package summary

import (
	"context"
	"github.com/ariefcatur/go-order-summary/internal/logging"
	"github.com/ariefcatur/go-order-summary/internal/orders"
	"golang.org/x/sync/errgroup"
	"sync"
)

type InventoryClient interface {
	GetVariantInventory(ctx context.Context, variantID string) (orders.VariantInventory, error)
}

// VariantInventoryMap: variant_id -> snapshot. Dibangun ulang tiap recompute.
type VariantInventoryMap map[string]orders.VariantInventory

const defaultConcurrency = 8

type Fetcher struct {
	Client      InventoryClient
	Flags       Flags
	Concurrency int
}

// Fetch mengambil inventory tiap variant unik secara paralel lalu join.
// Request yang gagal cukup di-skip (best effort): variant-nya tidak ada di map.
func (f *Fetcher) Fetch(ctx context.Context, items []orders.LineItem) VariantInventoryMap {
	out := VariantInventoryMap{}
	if !f.Flags.InventoryEnabled {
		return out
	}

	seen := map[string]bool{}
	variantIDs := make([]string, 0, len(items))
	for _, it := range items {
		if it.VariantID == "" || seen[it.VariantID] {
			continue
		}
		seen[it.VariantID] = true
		variantIDs = append(variantIDs, it.VariantID)
	}
	if len(variantIDs) == 0 {
		return out
	}

	limit := f.Concurrency
	if limit <= 0 {
		limit = defaultConcurrency
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(limit)
	for _, id := range variantIDs {
		id := id
		g.Go(func() error {
			inv, err := f.Client.GetVariantInventory(ctx, id)
			if err != nil {
				logging.Warn(ctx).Err(err).Str("variantId", id).Msg("variant inventory fetch failed, skipped")
				return nil
			}
			if inv.VariantID == "" {
				inv.VariantID = id
			}
			mu.Lock()
			out[id] = inv
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // goroutine tidak pernah return error
	return out
}
