package cart

import (
	"context"
	"math"
	"time"

	"github.com/anamkhan-2/bzooo-webtechProject/models"
)

// Catalog resolves a product identifier to its canonical record.
// Implementations must return ErrTicketNotFound on a miss.
type Catalog interface {
	FindTicket(ctx context.Context, id uint) (*models.Ticket, error)
}

// Totals are the order-level amounts derived from a cart. Never stored;
// recomputed on every display and again inside order creation.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

const (
	shippingFlatRate = 9.99
	taxRate          = 0.10
)

// Round2 rounds to two decimal places, half away from zero. The one
// rounding rule used everywhere money is computed.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Engine mutates session carts and computes totals. Prices always come
// from the injected catalog, never from the client.
type Engine struct {
	catalog Catalog
}

func NewEngine(catalog Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// AddItem adds quantity units of the given ticket to the cart. If a line
// with the same ProductID already exists its quantity is incremented and
// its price refreshed from the current catalog price, so a catalog price
// change is picked up on the next purchase of that line without touching
// unrelated lines.
func (e *Engine) AddItem(ctx context.Context, cart *models.Cart, productID uint, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidItem
	}

	ticket, err := e.catalog.FindTicket(ctx, productID)
	if err != nil {
		return err
	}

	now := time.Now()
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += quantity
			cart.Items[i].UnitPrice = ticket.Price
			cart.Items[i].Subtotal = Round2(float64(cart.Items[i].Quantity) * ticket.Price)
			cart.Items[i].AddedAt = now
			cart.UpdatedAt = now
			return nil
		}
	}

	cart.Items = append(cart.Items, models.CartItem{
		ProductID:   ticket.ID,
		ProductName: ticket.Name,
		Quantity:    quantity,
		UnitPrice:   ticket.Price,
		Subtotal:    Round2(float64(quantity) * ticket.Price),
		AddedAt:     now,
	})
	cart.UpdatedAt = now
	return nil
}

// Recalculate normalizes the cart in place and returns authoritative
// totals. Lines with non-positive quantity or negative price are dropped;
// every surviving Subtotal is recomputed from quantity * price. Calling it
// twice on an unchanged cart yields identical totals.
func Recalculate(cart *models.Cart) Totals {
	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.Quantity <= 0 || item.UnitPrice < 0 {
			continue
		}
		item.Subtotal = Round2(float64(item.Quantity) * item.UnitPrice)
		kept = append(kept, item)
	}
	cart.Items = kept

	// Sum at full precision, round once at the end.
	var sum float64
	for _, item := range cart.Items {
		sum += item.Subtotal
	}

	totals := Totals{Subtotal: Round2(sum)}
	if len(cart.Items) > 0 {
		totals.Shipping = shippingFlatRate
	}
	totals.Tax = Round2(totals.Subtotal * taxRate)
	totals.Total = Round2(totals.Subtotal + totals.Shipping + totals.Tax)
	return totals
}

// Clear empties the cart. Idempotent.
func Clear(cart *models.Cart) {
	cart.Items = nil
	cart.UpdatedAt = time.Now()
}

// Validate reports whether every line item is well formed: positive
// quantity, non-negative price. The checkout workflow re-checks this
// defensively in case the session payload was tampered with between
// display and submission.
func Validate(cart *models.Cart) error {
	for _, item := range cart.Items {
		if item.Quantity <= 0 || item.UnitPrice < 0 || math.IsNaN(item.UnitPrice) {
			return ErrInvalidItem
		}
	}
	return nil
}
