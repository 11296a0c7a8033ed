package models

import "errors"

// Domain errors. Handlers map these to HTTP statuses with errors.Is.
var (
	// ErrProductNotFound is returned when a product reference no longer
	// resolves to a live record (or names an unknown variant kind).
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidQuantity is returned for a zero or negative line-item
	// quantity. Lines are removed, never zeroed.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrEmptyCart is returned when checking out a cart with no items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidTransition is returned when an order status would move
	// backward or to an unknown state.
	ErrInvalidTransition = errors.New("invalid order status transition")
)
