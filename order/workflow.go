package order

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"unicart/cart"
	"unicart/models"
	"unicart/store"
)

// PlacementInput is the delivery contact block of a placement request.
// User_id stays nil for guest placements.
type PlacementInput struct {
	Customer_name    string  `json:"customer_name" validate:"required"`
	Phone            string  `json:"phone" validate:"required"`
	Delivery_address string  `json:"delivery_address" validate:"required"`
	Collection_point string  `json:"collection_point"`
	User_id          *string `json:"-"`
}

// Workflow turns a cart into a persisted order against the current batch.
type Workflow struct {
	Batches store.BatchStore
	Orders  store.OrderStore
	Now     func() time.Time
	Rand    *rand.Rand
}

func NewWorkflow(batches store.BatchStore, orders store.OrderStore) *Workflow {
	return &Workflow{
		Batches: batches,
		Orders:  orders,
		Now:     time.Now,
		Rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Place validates the cart and contact info, resolves the current batch and
// persists the order with a frozen snapshot of the cart lines. On success the
// order id is recorded in the device's session history and the cart cleared.
//
// The batch-open check and the insert are two separate store calls on
// purpose: a batch closing in between can let one late order through. That
// race is accepted behavior, not something to fix with a transaction.
func (w *Workflow) Place(ctx context.Context, engine *cart.Engine, in PlacementInput) (models.Order, error) {
	lines := engine.Lines()
	if len(lines) == 0 {
		return models.Order{}, ErrEmptyCart
	}
	if strings.TrimSpace(in.Customer_name) == "" ||
		strings.TrimSpace(in.Phone) == "" ||
		strings.TrimSpace(in.Delivery_address) == "" {
		return models.Order{}, ErrMissingContactInfo
	}

	b, err := w.Batches.LatestBatch(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return models.Order{}, ErrNoActiveSlot
	}
	if err != nil {
		return models.Order{}, &PersistenceError{Err: err}
	}
	if !b.Is_active {
		return models.Order{}, &OrdersClosedError{SlotLabel: b.Slot_label}
	}

	now := w.Now()
	var total float64
	var quantity int
	for _, line := range lines {
		total += line.Unit_price * float64(line.Quantity)
		quantity += line.Quantity
	}

	batchID := b.Batch_id
	o := models.Order{
		ID:               primitive.NewObjectID(),
		Order_id:         GenerateOrderID(now, w.Rand),
		Batch_id:         &batchID,
		User_id:          in.User_id,
		Customer_name:    strings.TrimSpace(in.Customer_name),
		Phone:            strings.TrimSpace(in.Phone),
		Delivery_address: strings.TrimSpace(in.Delivery_address),
		Collection_point: strings.TrimSpace(in.Collection_point),
		Items:            lines,
		Total_amount:     total,
		Total_quantity:   quantity,
		Payment_mode:     models.PaymentModePayOnDelivery,
		Created_at:       now,
	}

	if err := w.Orders.InsertOrder(ctx, o); err != nil {
		// cart intentionally left intact for resubmission
		return models.Order{}, &PersistenceError{Err: err}
	}

	// The order exists from here on; session bookkeeping failures must not
	// turn a placed order into a user-visible rejection.
	if err := engine.RecordOrder(ctx, o.Order_id); err != nil {
		logrus.WithFields(logrus.Fields{"order_id": o.Order_id}).Warn("failed to record order id in session")
	}
	if err := engine.Clear(ctx); err != nil {
		logrus.WithFields(logrus.Fields{"order_id": o.Order_id}).Warn("failed to clear cart after placement")
	}
	return o, nil
}
