package checkout

import "github.com/anamkhan-2/bzooo-webtechProject/models"

// CredentialVerifier decides whether a supplied credential identifies an
// admin. Implementations range from an API-key comparison to a signed
// token check; the guard below is unaffected by which one is wired in.
//
// None of the bundled verifiers are real credential verification — a
// production deployment must supply one backed by an actual identity
// system.
type CredentialVerifier interface {
	Verify(credential string) bool
}

// RequireNonEmptyCart gates both rendering the checkout view and accepting
// an order submission. Presentation-agnostic: the boundary decides whether
// the reason becomes a JSON payload or an error page.
func RequireNonEmptyCart(cart *models.Cart) (bool, string) {
	if cart == nil || len(cart.Items) == 0 {
		return false, "Your cart is empty. Please add items to your cart before checkout."
	}
	return true, ""
}

// IsAdmin reports whether the credential passes the configured verifier.
func IsAdmin(v CredentialVerifier, credential string) bool {
	if v == nil || credential == "" {
		return false
	}
	return v.Verify(credential)
}
