package checkout

import "errors"

var (
	// ErrValidation covers missing required customer fields.
	ErrValidation = errors.New("checkout: customer name and email are required")

	// ErrEmptyCart rejects a checkout attempt with zero line items.
	ErrEmptyCart = errors.New("checkout: cart is empty")

	// ErrPersistence wraps order-store failures. The session cart is left
	// untouched so the customer can retry without re-entering items.
	ErrPersistence = errors.New("checkout: order persistence failed")
)
