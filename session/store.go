// Package session holds the per-visitor shopping cart. Carts are never
// shared between sessions; a session that has no cart yet gets an empty
// one (or the demo cart, when the store is configured to seed).
package session

import (
	"context"

	"github.com/anamkhan-2/bzooo-webtechProject/models"
)

type Store interface {
	// Get returns the session's cart, defaulting for first access.
	Get(ctx context.Context, sessionID string) (*models.Cart, error)
	Set(ctx context.Context, sessionID string, cart *models.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// defaultCart builds the cart handed to a session on first access.
func defaultCart(seedDemo bool) *models.Cart {
	if seedDemo {
		return models.DemoCart()
	}
	return &models.Cart{}
}
