package checkout

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/anamkhan-2/bzooo-webtechProject/cart"
	"github.com/anamkhan-2/bzooo-webtechProject/models"
	"github.com/anamkhan-2/bzooo-webtechProject/session"
)

// OrderStore is the durable side of checkout.
type OrderStore interface {
	Save(ctx context.Context, order *models.Order) (uint, error)
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) error
}

// Workflow turns a session cart into a persisted order and resets the
// cart. Order creation is serialized per session so two concurrent
// submissions cannot both charge the same cart.
type Workflow struct {
	orders    OrderStore
	sessions  session.Store
	locks     sync.Map // session ID -> *sync.Mutex
	onCreated func(models.Order)
}

func NewWorkflow(orders OrderStore, sessions session.Store) *Workflow {
	return &Workflow{orders: orders, sessions: sessions}
}

// OnOrderCreated registers a hook invoked after every successful checkout
// (e.g. the admin websocket broadcast).
func (w *Workflow) OnOrderCreated(fn func(models.Order)) {
	w.onCreated = fn
}

// CreateOrder validates the session cart, re-derives totals from
// server-held prices, persists the order with status confirmed, and
// empties the cart. Totals or subtotals submitted by the client are never
// consulted. On any failure before persistence, and on persistence failure
// itself, the cart is left exactly as it was.
func (w *Workflow) CreateOrder(ctx context.Context, sessionID, customerName, email string) (*models.Order, error) {
	if strings.TrimSpace(customerName) == "" || strings.TrimSpace(email) == "" {
		return nil, ErrValidation
	}

	lock := w.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	current, err := w.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if ok, _ := RequireNonEmptyCart(current); !ok {
		return nil, ErrEmptyCart
	}

	// The session payload may have been tampered with between display and
	// submission.
	if err := cart.Validate(current); err != nil {
		return nil, err
	}

	totals := cart.Recalculate(current)
	snapshot := current.Clone()

	order := &models.Order{
		OrderRef:     generateOrderRef(),
		CustomerName: customerName,
		Email:        email,
		Items:        orderItems(snapshot),
		Subtotal:     totals.Subtotal,
		Shipping:     totals.Shipping,
		Tax:          totals.Tax,
		TotalAmount:  totals.Total,
		Status:       models.OrderStatusConfirmed,
		CreatedAt:    time.Now(),
	}

	// A request cancelled before persistence must leave the cart intact.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	id, err := w.orders.Save(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	order.ID = id

	cart.Clear(current)
	if err := w.sessions.Set(ctx, sessionID, current); err != nil {
		// The order is already durable; a retry here would double-charge.
		log.Printf("⚠️ failed to reset cart for session %s after order %d: %v", sessionID, id, err)
	}

	if w.onCreated != nil {
		w.onCreated(*order)
	}
	return order, nil
}

func (w *Workflow) sessionLock(sessionID string) *sync.Mutex {
	lock, _ := w.locks.LoadOrStore(sessionID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

func orderItems(snapshot *models.Cart) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(snapshot.Items))
	for _, line := range snapshot.Items {
		items = append(items, models.OrderItem{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Subtotal:    line.Subtotal,
		})
	}
	return items
}

// Example: 20250908130500-<uuid4>
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
