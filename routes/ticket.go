package routes

import (
	"github.com/gin-gonic/gin"

	ticketController "github.com/anamkhan-2/bzooo-webtechProject/controllers/ticket"
)

func SetupTicketRoutes(r *gin.Engine, deps Deps) {
	tickets := r.Group("/tickets")
	{
		tickets.GET("", ticketController.GetTickets(deps.DB)) // filtering + pagination
		tickets.GET("/:id", ticketController.GetTicketByID(deps.DB))
	}
}
