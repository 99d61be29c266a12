package domain

import "errors"

// Sentinel errors for the menu domain. Use errors.Is() to check these.
var (
	// ErrMenuNotFound indicates no menu snapshot could be resolved.
	// Corrupt payloads match this too, so callers treat them as missing.
	ErrMenuNotFound = errors.New("menu not found")

	// ErrCorruptMenu indicates a stored or inline menu payload failed to parse.
	// Always returned wrapped together with ErrMenuNotFound.
	ErrCorruptMenu = errors.New("corrupt menu payload")

	// ErrMenuItemNotFound indicates no item with the given id exists in the menu.
	ErrMenuItemNotFound = errors.New("menu item not found")

	// ErrInvalidMenuItem indicates item fields violate domain constraints.
	ErrInvalidMenuItem = errors.New("invalid menu item")

	// ErrInvalidRestaurantName indicates the restaurant name violates domain constraints.
	ErrInvalidRestaurantName = errors.New("invalid restaurant name")

	// ErrInvalidTransition indicates an edit-form action not allowed in the current state.
	ErrInvalidTransition = errors.New("invalid edit form transition")

	// ErrEmptyMenu indicates a QR code was requested for a menu with no items.
	ErrEmptyMenu = errors.New("menu has no items")

	// ErrEncodeFailed indicates the QR encoder could not render the link.
	ErrEncodeFailed = errors.New("qr code encoding failed")
)
