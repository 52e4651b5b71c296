package checkout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anamkhan-2/bzooo-webtechProject/checkout"
	"github.com/anamkhan-2/bzooo-webtechProject/models"
)

func TestRequireNonEmptyCart(t *testing.T) {
	ok, reason := checkout.RequireNonEmptyCart(&models.Cart{})
	assert.False(t, ok)
	assert.NotEmpty(t, reason)

	ok, reason = checkout.RequireNonEmptyCart(nil)
	assert.False(t, ok)
	assert.NotEmpty(t, reason)

	ok, reason = checkout.RequireNonEmptyCart(&models.Cart{Items: []models.CartItem{{Quantity: 1, UnitPrice: 1}}})
	assert.True(t, ok)
	assert.Empty(t, reason)
}

type allowVerifier struct{ allowed string }

func (v allowVerifier) Verify(credential string) bool { return credential == v.allowed }

func TestIsAdmin(t *testing.T) {
	v := allowVerifier{allowed: "secret-key"}

	assert.True(t, checkout.IsAdmin(v, "secret-key"))
	assert.False(t, checkout.IsAdmin(v, "wrong"))
	assert.False(t, checkout.IsAdmin(v, ""))
	assert.False(t, checkout.IsAdmin(nil, "secret-key"))
}
