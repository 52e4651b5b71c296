package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Created but not confirmed
	OrderStatusConfirmed OrderStatus = "confirmed" // Checkout completed, or confirmed by admin
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled by admin
)

// Order is the durable record of a completed checkout. Items is a snapshot
// of the cart at creation time; after save only Status may change (admin
// confirm/cancel), never line items or totals.
type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	OrderRef     string      `gorm:"uniqueIndex" json:"order_ref"`
	CustomerName string      `gorm:"not null" json:"customer_name"`
	Email        string      `gorm:"not null" json:"email"`
	Items        []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal     float64     `json:"subtotal"`
	Shipping     float64     `json:"shipping"`
	Tax          float64     `json:"tax"`
	TotalAmount  float64     `json:"total_amount"`
	Status       OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"-"`
	OrderID     uint    `gorm:"index" json:"-"`
	ProductID   uint    `json:"product_id,omitempty"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}
