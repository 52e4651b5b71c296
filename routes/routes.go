package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/anamkhan-2/bzooo-webtechProject/cart"
	"github.com/anamkhan-2/bzooo-webtechProject/catalog"
	"github.com/anamkhan-2/bzooo-webtechProject/checkout"
	"github.com/anamkhan-2/bzooo-webtechProject/session"
)

// Deps carries every collaborator the handlers need; nothing reaches for
// globals.
type Deps struct {
	DB       *gorm.DB
	Engine   *cart.Engine
	Workflow *checkout.Workflow
	Sessions session.Store
	Orders   checkout.OrderStore
	Cache    *catalog.Cache
	Admin    checkout.CredentialVerifier
}

// SetupRoutes is the single entry-point that wires up the public shop,
// checkout, and admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// 1️⃣ Public catalog + cart routes (session cookie only)
	SetupTicketRoutes(r, deps)
	SetupCartRoutes(r, deps)

	// 2️⃣ Checkout + order confirmation
	SetupOrderRoutes(r, deps)

	// 3️⃣ Admin routes (credential-verifier protected)
	SetupAdminRoutes(r, deps)
}
