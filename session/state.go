package session

import (
	"context"
	"encoding/json"
	"time"

	"unicart/models"
)

const (
	cartKeyPrefix   = "unicart:cart:"
	ordersKeyPrefix = "unicart:orders:"

	// maxRecentOrders caps the per-device order history list.
	maxRecentOrders = 20
)

// Order-id lists age out after a month; cart snapshots never expire.
var orderListTTL = 30 * 24 * time.Hour

// LoadCart returns the last persisted cart snapshot for the device.
// A missing or corrupt snapshot yields an empty cart, never an error.
func LoadCart(ctx context.Context, s Store, deviceID string) []models.CartLine {
	raw, err := s.Get(ctx, cartKeyPrefix+deviceID)
	if err != nil {
		return nil
	}
	var lines []models.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil
	}
	return lines
}

func SaveCart(ctx context.Context, s Store, deviceID string, lines []models.CartLine) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.Set(ctx, cartKeyPrefix+deviceID, raw, 0)
}

// LoadOrderIDs returns the device's order-id list, most recent first.
// Missing or corrupt data yields an empty list.
func LoadOrderIDs(ctx context.Context, s Store, deviceID string) []string {
	raw, err := s.Get(ctx, ordersKeyPrefix+deviceID)
	if err != nil {
		return nil
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil
	}
	return ids
}

func SaveOrderIDs(ctx context.Context, s Store, deviceID string, ids []string) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return s.Set(ctx, ordersKeyPrefix+deviceID, raw, orderListTTL)
}

// PushOrderID prepends orderID to the device's list, dropping any earlier
// occurrence and trimming to maxRecentOrders.
func PushOrderID(ctx context.Context, s Store, deviceID, orderID string) error {
	ids := LoadOrderIDs(ctx, s, deviceID)
	next := make([]string, 0, len(ids)+1)
	next = append(next, orderID)
	for _, id := range ids {
		if id != orderID {
			next = append(next, id)
		}
	}
	if len(next) > maxRecentOrders {
		next = next[:maxRecentOrders]
	}
	return SaveOrderIDs(ctx, s, deviceID, next)
}
