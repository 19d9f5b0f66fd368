package order

import "errors"

var (
	// ErrEmptyOrder is returned when placing an order with no items.
	ErrEmptyOrder = errors.New("order must contain at least one item")
	// ErrIncompleteSlot is returned when the slot is missing a date or time.
	ErrIncompleteSlot = errors.New("order slot must have both a date and a time")
)
