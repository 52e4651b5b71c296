package checkout_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anamkhan-2/bzooo-webtechProject/cart"
	"github.com/anamkhan-2/bzooo-webtechProject/checkout"
	"github.com/anamkhan-2/bzooo-webtechProject/models"
	"github.com/anamkhan-2/bzooo-webtechProject/session"
	"github.com/anamkhan-2/bzooo-webtechProject/storage"
)

const sid = "test-session"

func seedCart(t *testing.T, sessions session.Store, items ...models.CartItem) {
	t.Helper()
	require.NoError(t, sessions.Set(context.Background(), sid, &models.Cart{Items: items}))
}

func twoLineCart() []models.CartItem {
	return []models.CartItem{
		{ProductID: 1, ProductName: "Lion Plush Toy", Quantity: 2, UnitPrice: 24.99, Subtotal: 49.98},
		{ProductID: 2, ProductName: "Zoo Documentary DVD Set", Quantity: 1, UnitPrice: 29.99, Subtotal: 29.99},
	}
}

func TestCreateOrderHappyPath(t *testing.T) {
	orders := storage.NewMemoryOrders()
	sessions := session.NewMemoryStore(false)
	workflow := checkout.NewWorkflow(orders, sessions)
	seedCart(t, sessions, twoLineCart()...)

	order, err := workflow.CreateOrder(context.Background(), sid, "Ana Khan", "ana@example.com")
	require.NoError(t, err)

	assert.NotZero(t, order.ID)
	assert.NotEmpty(t, order.OrderRef)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	assert.Equal(t, 79.97, order.Subtotal)
	assert.Equal(t, 9.99, order.Shipping)
	assert.Equal(t, 8.00, order.Tax)
	assert.Equal(t, 97.96, order.TotalAmount)
	require.Len(t, order.Items, 2)

	// The session cart is emptied in the same logical operation.
	after, err := sessions.Get(context.Background(), sid)
	require.NoError(t, err)
	assert.Empty(t, after.Items)
}

func TestCreateOrderSnapshotIsIndependent(t *testing.T) {
	orders := storage.NewMemoryOrders()
	sessions := session.NewMemoryStore(false)
	workflow := checkout.NewWorkflow(orders, sessions)
	seedCart(t, sessions, twoLineCart()...)

	order, err := workflow.CreateOrder(context.Background(), sid, "Ana Khan", "ana@example.com")
	require.NoError(t, err)

	// Mutate the session cart after checkout; the saved order must not move.
	after, err := sessions.Get(context.Background(), sid)
	require.NoError(t, err)
	after.Items = append(after.Items, models.CartItem{ProductID: 9, Quantity: 5, UnitPrice: 1.00})
	require.NoError(t, sessions.Set(context.Background(), sid, after))

	saved, err := orders.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Len(t, saved.Items, 2)
	assert.Equal(t, 97.96, saved.TotalAmount)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	orders := storage.NewMemoryOrders()
	sessions := session.NewMemoryStore(false)
	workflow := checkout.NewWorkflow(orders, sessions)

	_, err := workflow.CreateOrder(context.Background(), sid, "Ana Khan", "ana@example.com")
	assert.ErrorIs(t, err, checkout.ErrEmptyCart)

	all, listErr := orders.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, all)
}

func TestCreateOrderMissingFields(t *testing.T) {
	orders := storage.NewMemoryOrders()
	sessions := session.NewMemoryStore(false)
	workflow := checkout.NewWorkflow(orders, sessions)
	seedCart(t, sessions, twoLineCart()...)

	_, err := workflow.CreateOrder(context.Background(), sid, "", "a@b.com")
	assert.ErrorIs(t, err, checkout.ErrValidation)
	_, err = workflow.CreateOrder(context.Background(), sid, "Ana Khan", "   ")
	assert.ErrorIs(t, err, checkout.ErrValidation)

	// Cart untouched either way.
	after, err := sessions.Get(context.Background(), sid)
	require.NoError(t, err)
	assert.Len(t, after.Items, 2)
}

func TestCreateOrderRejectsTamperedItems(t *testing.T) {
	orders := storage.NewMemoryOrders()
	sessions := session.NewMemoryStore(false)
	workflow := checkout.NewWorkflow(orders, sessions)
	seedCart(t, sessions, models.CartItem{ProductID: 1, Quantity: -2, UnitPrice: 24.99})

	_, err := workflow.CreateOrder(context.Background(), sid, "Ana Khan", "ana@example.com")
	assert.ErrorIs(t, err, cart.ErrInvalidItem)

	all, listErr := orders.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, all)
}

func TestCreateOrderRecomputesTamperedTotals(t *testing.T) {
	orders := storage.NewMemoryOrders()
	sessions := session.NewMemoryStore(false)
	workflow := checkout.NewWorkflow(orders, sessions)
	// Client rewrote the per-line subtotal to a penny.
	seedCart(t, sessions, models.CartItem{ProductID: 1, ProductName: "Lion Plush Toy", Quantity: 2, UnitPrice: 24.99, Subtotal: 0.01})

	order, err := workflow.CreateOrder(context.Background(), sid, "Ana Khan", "ana@example.com")
	require.NoError(t, err)

	assert.Equal(t, 49.98, order.Subtotal)
	assert.Equal(t, 49.98, order.Items[0].Subtotal)
}

type failingOrders struct{}

func (failingOrders) Save(ctx context.Context, order *models.Order) (uint, error) {
	return 0, errors.New("connection refused")
}
func (failingOrders) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	return nil, storage.ErrOrderNotFound
}
func (failingOrders) List(ctx context.Context) ([]models.Order, error) { return nil, nil }
func (failingOrders) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) error {
	return storage.ErrOrderNotFound
}

func TestCreateOrderPersistenceFailureLeavesCartIntact(t *testing.T) {
	sessions := session.NewMemoryStore(false)
	workflow := checkout.NewWorkflow(failingOrders{}, sessions)
	seedCart(t, sessions, twoLineCart()...)

	_, err := workflow.CreateOrder(context.Background(), sid, "Ana Khan", "ana@example.com")
	assert.ErrorIs(t, err, checkout.ErrPersistence)

	after, getErr := sessions.Get(context.Background(), sid)
	require.NoError(t, getErr)
	assert.Len(t, after.Items, 2)
}

func TestCreateOrderCancelledContextLeavesCartIntact(t *testing.T) {
	orders := storage.NewMemoryOrders()
	sessions := session.NewMemoryStore(false)
	workflow := checkout.NewWorkflow(orders, sessions)
	seedCart(t, sessions, twoLineCart()...)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := workflow.CreateOrder(ctx, sid, "Ana Khan", "ana@example.com")
	assert.ErrorIs(t, err, checkout.ErrPersistence)

	after, getErr := sessions.Get(context.Background(), sid)
	require.NoError(t, getErr)
	assert.Len(t, after.Items, 2)

	all, listErr := orders.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, all)
}

func TestCreateOrderSecondSubmitFindsEmptyCart(t *testing.T) {
	orders := storage.NewMemoryOrders()
	sessions := session.NewMemoryStore(false)
	workflow := checkout.NewWorkflow(orders, sessions)
	seedCart(t, sessions, twoLineCart()...)

	_, err := workflow.CreateOrder(context.Background(), sid, "Ana Khan", "ana@example.com")
	require.NoError(t, err)

	// A double-submit of the same checkout form cannot charge twice.
	_, err = workflow.CreateOrder(context.Background(), sid, "Ana Khan", "ana@example.com")
	assert.ErrorIs(t, err, checkout.ErrEmptyCart)
}

func TestCreateOrderBroadcastHook(t *testing.T) {
	orders := storage.NewMemoryOrders()
	sessions := session.NewMemoryStore(false)
	workflow := checkout.NewWorkflow(orders, sessions)
	seedCart(t, sessions, twoLineCart()...)

	var got []models.Order
	workflow.OnOrderCreated(func(o models.Order) { got = append(got, o) })

	order, err := workflow.CreateOrder(context.Background(), sid, "Ana Khan", "ana@example.com")
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, order.ID, got[0].ID)
}
