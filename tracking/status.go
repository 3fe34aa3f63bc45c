package tracking

import (
	"context"
	"errors"

	"unicart/models"
	"unicart/store"
)

// ErrTrackingUnavailable means the order's batch has been archived (or the
// order never referenced one). The order still exists for reporting but has
// no live tracking source; this is terminal, not step 0.
var ErrTrackingUnavailable = errors.New("tracking: order is no longer trackable")

// Status is one poll's view of an order's fulfillment.
type Status struct {
	Order_id       string  `json:"order_id"`
	Slot_label     string  `json:"slot_label"`
	Current_step   int     `json:"current_step"`
	Status_message string  `json:"status_message"`
	Total_amount   float64 `json:"total_amount"`
	Item_count     int     `json:"item_count"`
}

// FetchStatus reads the order and its batch. The order carries no step of its
// own, so advancing the batch is reflected here for every order in it.
func FetchStatus(ctx context.Context, orders store.OrderStore, batches store.BatchStore, orderID string) (Status, error) {
	o, err := orders.OrderByID(ctx, orderID)
	if err != nil {
		return Status{}, err
	}
	if o.Batch_id == nil {
		return Status{}, ErrTrackingUnavailable
	}
	b, err := batches.BatchByID(ctx, *o.Batch_id)
	if errors.Is(err, store.ErrNotFound) {
		return Status{}, ErrTrackingUnavailable
	}
	if err != nil {
		return Status{}, err
	}
	return Status{
		Order_id:       o.Order_id,
		Slot_label:     b.Slot_label,
		Current_step:   b.Current_step,
		Status_message: b.Status_message,
		Total_amount:   o.Total_amount,
		Item_count:     itemCount(o.Items),
	}, nil
}

func itemCount(lines []models.CartLine) int {
	var count int
	for _, line := range lines {
		count += line.Quantity
	}
	return count
}
