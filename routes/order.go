package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/anamkhan-2/bzooo-webtechProject/controllers/order"
)

func SetupOrderRoutes(r *gin.Engine, deps Deps) {
	// Checkout page data, gated on a non-empty cart
	r.GET("/checkout", orderControllers.CheckoutHandler(deps.Sessions))

	// Submit an order; totals are recomputed server-side
	r.POST("/create-order", orderControllers.CreateOrderHandler(deps.Workflow))

	// Order confirmation lookup
	r.GET("/orders/:orderID", orderControllers.GetOrderByIDHandler(deps.Orders))
}
