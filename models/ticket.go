package models

import (
	"time"

	"gorm.io/gorm"
)

// Ticket is the catalog record for anything sellable: zoo entry tickets,
// shows, gift-shop products. Canonical source of truth for name and price;
// client-supplied values are always overridden from here on add-to-cart.
type Ticket struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Price       float64        `gorm:"not null" json:"price"` // Required, >= 0
	Description string         `json:"description"`
	Category    string         `gorm:"index" json:"category"` // e.g. "Animal", "Show", "Adventure"
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
