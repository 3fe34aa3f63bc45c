package store

import (
	"context"
	"errors"

	"unicart/models"
)

// ErrNotFound is returned when a read matches no record.
var ErrNotFound = errors.New("store: record not found")

// BatchStore is the data-access surface for the order_batches table.
// LatestBatch resolves the "current" batch: the most recently created row.
type BatchStore interface {
	LatestBatch(ctx context.Context) (models.OrderBatch, error)
	BatchByID(ctx context.Context, batchID string) (models.OrderBatch, error)
	InsertBatch(ctx context.Context, batch models.OrderBatch) error
	UpdateBatch(ctx context.Context, batch models.OrderBatch) error
	DeleteBatch(ctx context.Context, batchID string) error
}

// OrderStore is the data-access surface for the orders table. Orders are
// insert-only; listing methods return newest first.
type OrderStore interface {
	InsertOrder(ctx context.Context, order models.Order) error
	OrderByID(ctx context.Context, orderID string) (models.Order, error)
	OrdersByIDs(ctx context.Context, orderIDs []string) ([]models.Order, error)
	OrdersByUser(ctx context.Context, userID string) ([]models.Order, error)
	OrdersByBatch(ctx context.Context, batchID string) ([]models.Order, error)
	AllOrders(ctx context.Context) ([]models.Order, error)
}

// CatalogStore reads menu data. The core never mutates the catalog.
type CatalogStore interface {
	MenuItems(ctx context.Context) ([]models.MenuItem, error)
	MenuItemByID(ctx context.Context, itemID string) (models.MenuItem, error)
	Categories(ctx context.Context) ([]models.Category, error)
	Restaurants(ctx context.Context) ([]models.Restaurant, error)
}
