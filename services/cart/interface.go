package cart

import "homeserve/models"

// CartService manages the pending cart lines and the selected booking slot.
// Derived values (detailed items, totals, counts) are recomputed on every
// read rather than cached.
type CartService interface {
	// AddItem increments the quantity for the service, inserting a new line
	// with quantity 1 if none exists. Unknown service IDs are accepted.
	AddItem(serviceID string)
	// RemoveItem deletes the line for the service; no-op if absent.
	RemoveItem(serviceID string)
	// SetQuantity replaces the line's quantity. A quantity <= 0 removes the
	// line, same as RemoveItem.
	SetQuantity(serviceID string, quantity int)
	// Lines returns the raw cart lines in insertion order.
	Lines() []models.CartLine
	// DetailedItems resolves each line against the catalog. Lines whose
	// service cannot be resolved are dropped from the result.
	DetailedItems() []models.CartItem
	// Total is the sum of price x quantity over resolvable lines.
	Total() float64
	// ItemCount is the sum of quantities across all lines.
	ItemCount() int
	// SelectSlot records the chosen booking slot, replacing any previous one.
	SelectSlot(slot models.SelectedSlot)
	// ClearSlot drops the selected slot without touching the cart lines.
	ClearSlot()
	// SelectedSlot returns the currently chosen slot, or nil.
	SelectedSlot() *models.SelectedSlot
	// Clear empties the cart AND resets the selected slot. The two always
	// reset together; callers rely on this compound contract after checkout.
	Clear()
}
