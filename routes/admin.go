package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/anamkhan-2/bzooo-webtechProject/controllers/order"
	ticketController "github.com/anamkhan-2/bzooo-webtechProject/controllers/ticket"
	"github.com/anamkhan-2/bzooo-webtechProject/middleware"
)

// SetupAdminRoutes registers all “/admin/*” endpoints behind the
// configured credential verifier.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.AdminOnly(deps.Admin))
	{
		// ─────────── Ticket Management ───────────
		ticketAdmin := adminGroup.Group("/tickets")
		{
			ticketAdmin.POST("", ticketController.CreateTicket(deps.DB))
			ticketAdmin.PUT("/:id", ticketController.UpdateTicket(deps.DB, deps.Cache))
			ticketAdmin.DELETE("/:id", ticketController.DeleteTicket(deps.DB, deps.Cache))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(deps.Orders))
			orderAdmin.POST("/:orderID/confirm", orderControllers.ConfirmOrderHandler(deps.Orders))
			orderAdmin.POST("/:orderID/cancel", orderControllers.CancelOrderHandler(deps.Orders))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(deps.Orders))

			// websocket endpoint for real-time order updates
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
		}
	}
}
