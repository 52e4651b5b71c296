package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/anamkhan-2/bzooo-webtechProject/controllers/cart"
)

func SetupCartRoutes(r *gin.Engine, deps Deps) {
	cartGroup := r.Group("/cart")
	{
		cartGroup.POST("/add", cartControllers.AddToCart(deps.Engine, deps.Sessions))
		cartGroup.GET("/summary", cartControllers.CartSummary(deps.Sessions))
		cartGroup.DELETE("/:product_id", cartControllers.RemoveCartItem(deps.Sessions))
		cartGroup.DELETE("", cartControllers.ClearCart(deps.Sessions))
	}
}
