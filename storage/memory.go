package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/anamkhan-2/bzooo-webtechProject/cart"
	"github.com/anamkhan-2/bzooo-webtechProject/models"
)

// MemoryOrders is the in-process order store used by the tests and by
// demo runs without a database. Stored orders are copied in and out.
type MemoryOrders struct {
	mu     sync.RWMutex
	nextID uint
	orders map[uint]models.Order
}

func NewMemoryOrders() *MemoryOrders {
	return &MemoryOrders{nextID: 1, orders: make(map[uint]models.Order)}
}

func (m *MemoryOrders) Save(ctx context.Context, order *models.Order) (uint, error) {
	_ = ctx

	m.mu.Lock()
	defer m.mu.Unlock()

	order.ID = m.nextID
	m.nextID++
	m.orders[order.ID] = cloneOrder(*order)
	return order.ID, nil
}

func (m *MemoryOrders) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	_ = ctx

	m.mu.RLock()
	defer m.mu.RUnlock()

	order, ok := m.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	clone := cloneOrder(order)
	return &clone, nil
}

func (m *MemoryOrders) List(ctx context.Context) ([]models.Order, error) {
	_ = ctx

	m.mu.RLock()
	defer m.mu.RUnlock()

	orders := make([]models.Order, 0, len(m.orders))
	for _, order := range m.orders {
		orders = append(orders, cloneOrder(order))
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (m *MemoryOrders) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) error {
	_ = ctx

	m.mu.Lock()
	defer m.mu.Unlock()

	order, ok := m.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	order.Status = status
	m.orders[id] = order
	return nil
}

func cloneOrder(order models.Order) models.Order {
	items := make([]models.OrderItem, len(order.Items))
	copy(items, order.Items)
	order.Items = items
	return order
}

// MemoryCatalog serves tickets from a fixed map.
type MemoryCatalog struct {
	mu      sync.RWMutex
	tickets map[uint]models.Ticket
}

func NewMemoryCatalog(tickets ...models.Ticket) *MemoryCatalog {
	c := &MemoryCatalog{tickets: make(map[uint]models.Ticket)}
	for _, t := range tickets {
		c.tickets[t.ID] = t
	}
	return c
}

func (c *MemoryCatalog) FindTicket(ctx context.Context, id uint) (*models.Ticket, error) {
	_ = ctx

	c.mu.RLock()
	defer c.mu.RUnlock()

	ticket, ok := c.tickets[id]
	if !ok {
		return nil, cart.ErrTicketNotFound
	}
	return &ticket, nil
}

// SetPrice simulates an admin price edit.
func (c *MemoryCatalog) SetPrice(id uint, price float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ticket, ok := c.tickets[id]; ok {
		ticket.Price = price
		c.tickets[id] = ticket
	}
}
