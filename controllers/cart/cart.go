package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anamkhan-2/bzooo-webtechProject/cart"
	"github.com/anamkhan-2/bzooo-webtechProject/middleware"
	"github.com/anamkhan-2/bzooo-webtechProject/session"
)

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	// Quantity is optional; absent or zero falls back to 1. Negative
	// values are rejected here, before the engine ever sees them.
	Quantity int `json:"quantity"`
}

// POST /cart/add
func AddToCart(engine *cart.Engine, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "product_id is required"})
			return
		}
		if input.Quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "quantity must be positive"})
			return
		}
		qty := input.Quantity
		if qty == 0 {
			qty = 1
		}

		sessionID := middleware.SessionID(c)
		current, err := sessions.Get(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error adding to cart"})
			return
		}

		if err := engine.AddItem(c.Request.Context(), current, input.ProductID, qty); err != nil {
			switch {
			case errors.Is(err, cart.ErrTicketNotFound):
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			case errors.Is(err, cart.ErrInvalidItem):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "quantity must be positive"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error adding to cart"})
			}
			return
		}

		totals := cart.Recalculate(current)
		if err := sessions.Set(c.Request.Context(), sessionID, current); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error adding to cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "cart": current.Items, "totals": totals})
	}
}

// GET /cart/summary
func CartSummary(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.SessionID(c)
		current, err := sessions.Get(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error getting cart summary"})
			return
		}

		// Recalculate normalizes stale or tampered line subtotals; persist
		// the normalized cart so the next read agrees with what we return.
		totals := cart.Recalculate(current)
		if err := sessions.Set(c.Request.Context(), sessionID, current); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error getting cart summary"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "cart": current.Items, "totals": totals})
	}
}

// DELETE /cart/:product_id
func RemoveCartItem(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product_id"})
			return
		}

		sessionID := middleware.SessionID(c)
		current, err := sessions.Get(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating cart"})
			return
		}

		kept := current.Items[:0]
		removed := false
		for _, item := range current.Items {
			if item.ProductID == uint(productID) {
				removed = true
				continue
			}
			kept = append(kept, item)
		}
		if !removed {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Cart item not found"})
			return
		}
		current.Items = kept

		totals := cart.Recalculate(current)
		if err := sessions.Set(c.Request.Context(), sessionID, current); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "cart": current.Items, "totals": totals})
	}
}

// DELETE /cart
func ClearCart(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.SessionID(c)
		current, err := sessions.Get(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error clearing cart"})
			return
		}

		cart.Clear(current)
		if err := sessions.Set(c.Request.Context(), sessionID, current); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error clearing cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart cleared"})
	}
}
