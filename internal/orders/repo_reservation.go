package orders

import (
	"context"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepo struct{ DB *pgxpool.Pool }

// ListByLineItems: semua reservation aktif untuk line item yang diberikan.
// Urutan by created_at supaya bucket di index stabil.
func (r *ReservationRepo) ListByLineItems(ctx context.Context, lineItemIDs []string) ([]ReservationItem, error) {
	if len(lineItemIDs) == 0 {
		return []ReservationItem{}, nil
	}
	rows, err := r.DB.Query(ctx, `
		SELECT id, COALESCE(line_item_id, ''), inventory_item_id, location_id, quantity
		FROM reservation_item
		WHERE line_item_id = ANY($1) AND deleted_at IS NULL
		ORDER BY created_at, id`, lineItemIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ReservationItem{}
	for rows.Next() {
		var it ReservationItem
		if err := rows.Scan(&it.ID, &it.LineItemID, &it.InventoryItemID, &it.LocationID, &it.Quantity); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
