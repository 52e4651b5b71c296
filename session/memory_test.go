package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anamkhan-2/bzooo-webtechProject/models"
	"github.com/anamkhan-2/bzooo-webtechProject/session"
)

func TestMemoryStoreDefaultsToEmptyCart(t *testing.T) {
	store := session.NewMemoryStore(false)

	cart, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestMemoryStoreDemoSeed(t *testing.T) {
	store := session.NewMemoryStore(true)

	cart, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 4)
	assert.Equal(t, "Lion Plush Toy", cart.Items[0].ProductName)
}

func TestMemoryStoreSessionsAreIsolated(t *testing.T) {
	store := session.NewMemoryStore(false)

	require.NoError(t, store.Set(context.Background(), "s1", &models.Cart{
		Items: []models.CartItem{{ProductID: 1, Quantity: 1, UnitPrice: 5}},
	}))

	other, err := store.Get(context.Background(), "s2")
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := session.NewMemoryStore(false)

	require.NoError(t, store.Set(context.Background(), "s1", &models.Cart{
		Items: []models.CartItem{{ProductID: 1, Quantity: 1, UnitPrice: 5}},
	}))

	first, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	first.Items[0].Quantity = 99

	second, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, second.Items[0].Quantity)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := session.NewMemoryStore(false)

	require.NoError(t, store.Set(context.Background(), "s1", &models.Cart{
		Items: []models.CartItem{{ProductID: 1, Quantity: 1, UnitPrice: 5}},
	}))
	require.NoError(t, store.Delete(context.Background(), "s1"))

	cart, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}
