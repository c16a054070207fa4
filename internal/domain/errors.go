package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates an entity with the same identity already exists.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidStatus is returned for order statuses outside PENDING/PAID/CANCELLED.
	ErrInvalidStatus = errors.New("invalid order status")
	// ErrInvalidPaymentMethod is returned for payment methods other than PIX/CARD.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	// ErrEmptyCart is returned when checking out without cart lines.
	ErrEmptyCart = errors.New("cart is empty")
)
