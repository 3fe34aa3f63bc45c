package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Catalog records are read-only for this service; an external admin tool
// owns their lifecycle.

type MenuItem struct {
	ID            primitive.ObjectID `bson:"_id"`
	Menu_item_id  string             `json:"menu_item_id"`
	Name          string             `json:"name" validate:"required"`
	Description   string             `json:"description"`
	Price         float64            `json:"price" validate:"gte=0"`
	Image_url     string             `json:"image_url"`
	Category_id   string             `json:"category_id"`
	Restaurant_id string             `json:"restaurant_id"`
	Is_available  bool               `json:"is_available"`
	Created_at    time.Time          `json:"created_at"`
}

type Category struct {
	ID          primitive.ObjectID `bson:"_id"`
	Category_id string             `json:"category_id"`
	Name        string             `json:"name" validate:"required"`
	Sort_order  int                `json:"sort_order"`
}

type Restaurant struct {
	ID            primitive.ObjectID `bson:"_id"`
	Restaurant_id string             `json:"restaurant_id"`
	Name          string             `json:"name" validate:"required"`
	Is_open       bool               `json:"is_open"`
}
