package cart

import "errors"

var (
	ErrTicketNotFound = errors.New("cart: ticket not found")
	ErrInvalidItem    = errors.New("cart: invalid line item")
)
