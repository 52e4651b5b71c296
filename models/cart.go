package models

import "time"

// CartItem is one line in a session cart. Subtotal is always derived on the
// server from Quantity * UnitPrice; a value arriving from the client is
// never trusted.
type CartItem struct {
	ProductID   uint      `json:"product_id,omitempty"` // 0 when the line was seeded without a catalog record
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Subtotal    float64   `json:"subtotal"`
	AddedAt     time.Time `json:"added_at"`
}

// Cart lives in the session store, one per visitor. Ordered; no two items
// share the same non-zero ProductID (merges on add).
type Cart struct {
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Clone returns a deep copy so a saved order snapshot never shares storage
// with the live session cart.
func (c *Cart) Clone() *Cart {
	clone := &Cart{
		Items:     make([]CartItem, len(c.Items)),
		UpdatedAt: c.UpdatedAt,
	}
	copy(clone.Items, c.Items)
	return clone
}

// DemoCart is the four-line cart the labs seed into fresh sessions when
// demo mode is on.
func DemoCart() *Cart {
	now := time.Now()
	return &Cart{
		Items: []CartItem{
			{ProductName: "Lion Plush Toy", Quantity: 2, UnitPrice: 24.99, Subtotal: 49.98, AddedAt: now},
			{ProductName: "Zoo Documentary DVD Set", Quantity: 1, UnitPrice: 29.99, Subtotal: 29.99, AddedAt: now},
			{ProductName: "Animal Coloring Book", Quantity: 3, UnitPrice: 4.99, Subtotal: 14.97, AddedAt: now},
			{ProductName: "Zoo Membership (1 Year)", Quantity: 1, UnitPrice: 99.99, Subtotal: 99.99, AddedAt: now},
		},
		UpdatedAt: now,
	}
}
