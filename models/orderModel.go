package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const PaymentModePayOnDelivery = "PAY_ON_DELIVERY"

// Order is immutable after placement. It carries no fulfillment step of its
// own; tracking always reads the step from the referenced batch.
type Order struct {
	ID               primitive.ObjectID `bson:"_id"`
	Order_id         string             `json:"order_id"`
	Batch_id         *string            `json:"batch_id"`
	User_id          *string            `json:"user_id"`
	Customer_name    string             `json:"customer_name" validate:"required"`
	Phone            string             `json:"phone" validate:"required"`
	Delivery_address string             `json:"delivery_address" validate:"required"`
	Collection_point string             `json:"collection_point"`
	Items            []CartLine         `json:"items"`
	Total_amount     float64            `json:"total_amount"`
	Total_quantity   int                `json:"total_quantity"`
	Payment_mode     string             `json:"payment_mode" validate:"required,eq=PAY_ON_DELIVERY"`
	Created_at       time.Time          `json:"created_at"`
}
