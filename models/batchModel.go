package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderBatch is a delivery slot. The most recently created row is the
// "current" batch; orders placed while it is active reference it and share
// its fulfillment step.
type OrderBatch struct {
	ID             primitive.ObjectID `bson:"_id"`
	Batch_id       string             `json:"batch_id"`
	Slot_label     string             `json:"slot_label" validate:"required"`
	Current_step   int                `json:"current_step" validate:"min=1,max=5"`
	Status_message string             `json:"status_message"`
	Is_active      bool               `json:"is_active"`
	Created_at     time.Time          `json:"created_at"`
	Updated_at     time.Time          `json:"updated_at"`
}
