package order

import "homeserve/models"

// OrderService is the append-only ledger of placed orders. Order snapshots
// are immutable after creation; only the status field ever changes.
type OrderService interface {
	// Place records a new order from a cart snapshot, slot and customer
	// profile. It does not clear the cart: the caller clears cart and slot
	// after a successful placement (two-step protocol).
	Place(items []models.CartItem, slot models.SelectedSlot, customer models.UserProfile, total float64, itemCount int) (*models.Order, error)
	// UpdateStatus replaces the status of the order with the given ID and
	// reports whether the order was found. Unknown IDs are a no-op. The
	// status value itself is unconstrained so future statuses need no
	// schema change.
	UpdateStatus(orderID string, status models.OrderStatus) bool
	// Get returns a copy of the order with the given ID.
	Get(orderID string) (*models.Order, bool)
	// List returns copies of all orders in placement order. Display sorting
	// (newest first) is a presentation concern.
	List() []models.Order
	// Reset wipes the ledger. Used by the sign-out flow.
	Reset()
}
