package batch

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"unicart/models"
	"unicart/store"
)

// Fulfillment steps run 1..5; the labels live in the tracking package.
const (
	MinStep = 1
	MaxStep = 5
)

const openingStatusMessage = "Accepting orders"

var (
	ErrSlotLabelRequired = errors.New("batch: slot label is required")
	ErrActiveBatchExists = errors.New("batch: an active batch already exists")
	ErrInvalidStep       = errors.New("batch: step must be between 1 and 5")
	ErrBatchStillOpen    = errors.New("batch: cannot archive a batch that is still accepting orders")
)

// Manager drives the batch lifecycle: create -> open <-> closed -> archived.
// The "current" batch is always the most recently created row; creating a new
// batch supersedes the previous one for new placements without touching it.
type Manager struct {
	Store store.BatchStore
	Now   func() time.Time
}

func NewManager(s store.BatchStore) *Manager {
	return &Manager{Store: s, Now: time.Now}
}

// Current resolves the most recently created batch, or store.ErrNotFound.
func (m *Manager) Current(ctx context.Context) (models.OrderBatch, error) {
	return m.Store.LatestBatch(ctx)
}

// Create opens a new slot. Only one active batch may exist at a time; close
// or archive the current one first.
func (m *Manager) Create(ctx context.Context, slotLabel string) (models.OrderBatch, error) {
	slotLabel = strings.TrimSpace(slotLabel)
	if slotLabel == "" {
		return models.OrderBatch{}, ErrSlotLabelRequired
	}

	current, err := m.Store.LatestBatch(ctx)
	if err == nil && current.Is_active {
		return models.OrderBatch{}, ErrActiveBatchExists
	}
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return models.OrderBatch{}, err
	}

	now := m.Now()
	b := models.OrderBatch{
		ID:             primitive.NewObjectID(),
		Slot_label:     slotLabel,
		Current_step:   MinStep,
		Status_message: openingStatusMessage,
		Is_active:      true,
		Created_at:     now,
		Updated_at:     now,
	}
	b.Batch_id = b.ID.Hex()
	if err := m.Store.InsertBatch(ctx, b); err != nil {
		return models.OrderBatch{}, err
	}
	return b, nil
}

// SetActive toggles open/closed. Closing immediately blocks new placements;
// re-opening keeps whatever step the batch was on.
func (m *Manager) SetActive(ctx context.Context, batchID string, active bool) (models.OrderBatch, error) {
	b, err := m.Store.BatchByID(ctx, batchID)
	if err != nil {
		return models.OrderBatch{}, err
	}
	b.Is_active = active
	b.Updated_at = m.Now()
	if err := m.Store.UpdateBatch(ctx, b); err != nil {
		return models.OrderBatch{}, err
	}
	return b, nil
}

// Advance sets the fulfillment step and status message. Stage edits are
// allowed while the batch is closed so staff can keep narrating a slot that
// already stopped accepting orders.
func (m *Manager) Advance(ctx context.Context, batchID string, step int, message string) (models.OrderBatch, error) {
	if step < MinStep || step > MaxStep {
		return models.OrderBatch{}, ErrInvalidStep
	}
	b, err := m.Store.BatchByID(ctx, batchID)
	if err != nil {
		return models.OrderBatch{}, err
	}
	b.Current_step = step
	b.Status_message = message
	b.Updated_at = m.Now()
	if err := m.Store.UpdateBatch(ctx, b); err != nil {
		return models.OrderBatch{}, err
	}
	return b, nil
}

// Archive permanently deletes a closed batch. Orders referencing it stay in
// the store for reporting but lose their live tracking source.
func (m *Manager) Archive(ctx context.Context, batchID string) error {
	b, err := m.Store.BatchByID(ctx, batchID)
	if err != nil {
		return err
	}
	if b.Is_active {
		return ErrBatchStillOpen
	}
	return m.Store.DeleteBatch(ctx, batchID)
}
