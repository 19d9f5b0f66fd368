package models

import "time"

// OrderStatus describes the processing state of a placed order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusCompleted OrderStatus = "completed"
)

// Order is an immutable snapshot of a completed checkout. Items, slot,
// customer details and totals are frozen at placement; only Status changes
// afterwards.
type Order struct {
	ID        string       `json:"orderId"`
	Items     []CartItem   `json:"items"`
	Slot      SelectedSlot `json:"slot"`
	Customer  UserProfile  `json:"customer"`
	Total     float64      `json:"total"`
	ItemCount int          `json:"numberOfItems"`
	Status    OrderStatus  `json:"status"`
	PlacedAt  time.Time    `json:"placedAt"`
}
