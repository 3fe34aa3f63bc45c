package cart

import (
	"context"
	"sync"

	"unicart/models"
	"unicart/session"
)

// Engine holds one device's cart. Totals are computed from the lines on every
// read, and every mutation writes the full snapshot back to the session store
// before returning, so a reload always sees the latest cart.
type Engine struct {
	store    session.Store
	deviceID string

	mu    sync.Mutex
	lines []models.CartLine
}

// NewEngine hydrates the engine from the device's last persisted snapshot.
// Absent or unreadable snapshots start the cart empty.
func NewEngine(ctx context.Context, store session.Store, deviceID string) *Engine {
	return &Engine{
		store:    store,
		deviceID: deviceID,
		lines:    session.LoadCart(ctx, store, deviceID),
	}
}

func (e *Engine) DeviceID() string { return e.deviceID }

// AddItem inserts a new line with quantity 1, or bumps the quantity when the
// item is already in the cart. The stored price is kept for existing lines.
func (e *Engine) AddItem(ctx context.Context, itemID, name string, unitPrice float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.lines {
		if e.lines[i].Item_id == itemID {
			e.lines[i].Quantity++
			return e.persist(ctx)
		}
	}
	e.lines = append(e.lines, models.CartLine{
		Item_id:    itemID,
		Name:       name,
		Unit_price: unitPrice,
		Quantity:   1,
	})
	return e.persist(ctx)
}

// SetQuantity sets a line's quantity; quantity <= 0 removes the line.
func (e *Engine) SetQuantity(ctx context.Context, itemID string, quantity int) error {
	if quantity <= 0 {
		return e.Remove(ctx, itemID)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.lines {
		if e.lines[i].Item_id == itemID {
			e.lines[i].Quantity = quantity
			return e.persist(ctx)
		}
	}
	return nil
}

func (e *Engine) Remove(ctx context.Context, itemID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.lines {
		if e.lines[i].Item_id == itemID {
			e.lines = append(e.lines[:i], e.lines[i+1:]...)
			return e.persist(ctx)
		}
	}
	return nil
}

func (e *Engine) Clear(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lines = nil
	return e.persist(ctx)
}

// Lines returns a copy of the cart in insertion order.
func (e *Engine) Lines() []models.CartLine {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]models.CartLine(nil), e.lines...)
}

func (e *Engine) TotalAmount() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	var total float64
	for _, line := range e.lines {
		total += line.Unit_price * float64(line.Quantity)
	}
	return total
}

func (e *Engine) TotalItems() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	var count int
	for _, line := range e.lines {
		count += line.Quantity
	}
	return count
}

// RecentOrderIDs returns the device's placed-order history, newest first.
func (e *Engine) RecentOrderIDs(ctx context.Context) []string {
	return session.LoadOrderIDs(ctx, e.store, e.deviceID)
}

// RecordOrder remembers a placed order id for this device.
func (e *Engine) RecordOrder(ctx context.Context, orderID string) error {
	return session.PushOrderID(ctx, e.store, e.deviceID, orderID)
}

// persist is called with the lock held.
func (e *Engine) persist(ctx context.Context) error {
	return session.SaveCart(ctx, e.store, e.deviceID, e.lines)
}
