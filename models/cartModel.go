package models

// CartLine is one selected menu item with its quantity. Orders embed a frozen
// copy of these lines, so price changes after placement never touch old orders.
type CartLine struct {
	Item_id    string  `json:"item_id" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	Unit_price float64 `json:"unit_price" validate:"gte=0"`
	Quantity   int     `json:"quantity" validate:"min=1"`
}
