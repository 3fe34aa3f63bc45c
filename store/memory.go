package store

import (
	"context"
	"sort"
	"sync"

	"unicart/models"
)

// Memory implements BatchStore, OrderStore and CatalogStore in process.
// Used by tests and as a dev fallback when no MongoDB is configured.
type Memory struct {
	mu      sync.Mutex
	seq     int
	batches []memRecord[models.OrderBatch]
	orders  []memRecord[models.Order]

	MenuData       []models.MenuItem
	CategoryData   []models.Category
	RestaurantData []models.Restaurant
}

type memRecord[T any] struct {
	seq int
	val T
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) LatestBatch(ctx context.Context) (models.OrderBatch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.batches) == 0 {
		return models.OrderBatch{}, ErrNotFound
	}
	latest := m.batches[0]
	for _, r := range m.batches[1:] {
		if r.val.Created_at.After(latest.val.Created_at) ||
			(r.val.Created_at.Equal(latest.val.Created_at) && r.seq > latest.seq) {
			latest = r
		}
	}
	return latest.val, nil
}

func (m *Memory) BatchByID(ctx context.Context, batchID string) (models.OrderBatch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.batches {
		if r.val.Batch_id == batchID {
			return r.val, nil
		}
	}
	return models.OrderBatch{}, ErrNotFound
}

func (m *Memory) InsertBatch(ctx context.Context, batch models.OrderBatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.batches = append(m.batches, memRecord[models.OrderBatch]{seq: m.seq, val: batch})
	return nil
}

func (m *Memory) UpdateBatch(ctx context.Context, batch models.OrderBatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.batches {
		if r.val.Batch_id == batch.Batch_id {
			m.batches[i].val = batch
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) DeleteBatch(ctx context.Context, batchID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.batches {
		if r.val.Batch_id == batchID {
			m.batches = append(m.batches[:i], m.batches[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) InsertOrder(ctx context.Context, order models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.orders = append(m.orders, memRecord[models.Order]{seq: m.seq, val: order})
	return nil
}

func (m *Memory) OrderByID(ctx context.Context, orderID string) (models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.orders {
		if r.val.Order_id == orderID {
			return r.val, nil
		}
	}
	return models.Order{}, ErrNotFound
}

func (m *Memory) OrdersByIDs(ctx context.Context, orderIDs []string) ([]models.Order, error) {
	wanted := make(map[string]bool, len(orderIDs))
	for _, id := range orderIDs {
		wanted[id] = true
	}
	return m.filterOrders(func(o models.Order) bool { return wanted[o.Order_id] }), nil
}

func (m *Memory) OrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return m.filterOrders(func(o models.Order) bool {
		return o.User_id != nil && *o.User_id == userID
	}), nil
}

func (m *Memory) OrdersByBatch(ctx context.Context, batchID string) ([]models.Order, error) {
	return m.filterOrders(func(o models.Order) bool {
		return o.Batch_id != nil && *o.Batch_id == batchID
	}), nil
}

func (m *Memory) AllOrders(ctx context.Context) ([]models.Order, error) {
	return m.filterOrders(func(models.Order) bool { return true }), nil
}

func (m *Memory) filterOrders(keep func(models.Order) bool) []models.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	matched := make([]memRecord[models.Order], 0, len(m.orders))
	for _, r := range m.orders {
		if keep(r.val) {
			matched = append(matched, r)
		}
	}
	// newest first, insertion order breaking ties
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].val.Created_at.Equal(matched[j].val.Created_at) {
			return matched[i].val.Created_at.After(matched[j].val.Created_at)
		}
		return matched[i].seq > matched[j].seq
	})
	out := make([]models.Order, len(matched))
	for i, r := range matched {
		out[i] = r.val
	}
	return out
}

func (m *Memory) MenuItems(ctx context.Context) ([]models.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.MenuItem(nil), m.MenuData...), nil
}

func (m *Memory) MenuItemByID(ctx context.Context, itemID string) (models.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range m.MenuData {
		if item.Menu_item_id == itemID {
			return item, nil
		}
	}
	return models.MenuItem{}, ErrNotFound
}

func (m *Memory) Categories(ctx context.Context) ([]models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Category(nil), m.CategoryData...), nil
}

func (m *Memory) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Restaurant(nil), m.RestaurantData...), nil
}
