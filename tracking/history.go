package tracking

import (
	"context"
	"sort"

	"unicart/models"
	"unicart/store"
)

// ResolveHistory returns the orders a viewer can track: the union, keyed by
// order id, of orders owned by the authenticated user and orders in the
// device's local list. The union keeps orders placed as a guest before
// logging in. Result is newest first.
func ResolveHistory(ctx context.Context, orders store.OrderStore, userID *string, localIDs []string) ([]models.Order, error) {
	seen := make(map[string]bool)
	var merged []models.Order

	if userID != nil {
		owned, err := orders.OrdersByUser(ctx, *userID)
		if err != nil {
			return nil, err
		}
		for _, o := range owned {
			seen[o.Order_id] = true
			merged = append(merged, o)
		}
	}

	if len(localIDs) > 0 {
		local, err := orders.OrdersByIDs(ctx, localIDs)
		if err != nil {
			return nil, err
		}
		for _, o := range local {
			if !seen[o.Order_id] {
				seen[o.Order_id] = true
				merged = append(merged, o)
			}
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Created_at.After(merged[j].Created_at)
	})
	return merged, nil
}

// AutoSelect picks the order to open directly: only when the viewer is a
// guest with exactly one order. Authenticated viewers and multi-order
// histories get the list first.
func AutoSelect(orders []models.Order, authenticated bool) *models.Order {
	if authenticated || len(orders) != 1 {
		return nil
	}
	return &orders[0]
}
