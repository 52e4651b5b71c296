// Package catalog resolves product identifiers to canonical ticket
// records. Read-only from the cart engine's perspective.
package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/anamkhan-2/bzooo-webtechProject/cart"
	"github.com/anamkhan-2/bzooo-webtechProject/models"
)

// Store reads tickets straight from the database.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindTicket(ctx context.Context, id uint) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := s.db.WithContext(ctx).First(&ticket, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrTicketNotFound
		}
		return nil, err
	}
	return &ticket, nil
}
