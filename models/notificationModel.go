package models

// Notification is the envelope pushed to websocket subscribers (admin
// dashboards listening for new orders and batch status changes).
type Notification struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}
