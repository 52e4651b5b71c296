package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/anamkhan-2/bzooo-webtechProject/cart"
	"github.com/anamkhan-2/bzooo-webtechProject/checkout"
	"github.com/anamkhan-2/bzooo-webtechProject/middleware"
	"github.com/anamkhan-2/bzooo-webtechProject/models"
	"github.com/anamkhan-2/bzooo-webtechProject/session"
	"github.com/anamkhan-2/bzooo-webtechProject/storage"
)

// -------- Request Structs --------

type CreateOrderRequest struct {
	CustomerName string `json:"customerName"`
	Email        string `json:"email"`
}

// -------- Handlers --------

// POST /create-order
func CreateOrderHandler(workflow *checkout.Workflow) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Customer name and email are required"})
			return
		}

		order, err := workflow.CreateOrder(c.Request.Context(), middleware.SessionID(c), req.CustomerName, req.Email)
		if err != nil {
			switch {
			case errors.Is(err, checkout.ErrValidation):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Customer name and email are required"})
			case errors.Is(err, checkout.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Your cart is empty. Please add items to your cart before checkout."})
			case errors.Is(err, cart.ErrInvalidItem):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Cart contains invalid items. Please review your cart."})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error creating order"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "orderId": order.ID})
	}
}

// GET /checkout — gated on a non-empty cart; returns the cart and totals
// the checkout page renders from.
func CheckoutHandler(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, err := sessions.Get(c.Request.Context(), middleware.SessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error loading checkout"})
			return
		}

		if ok, reason := checkout.RequireNonEmptyCart(current); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": reason})
			return
		}

		totals := cart.Recalculate(current)
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": current.Items, "totals": totals})
	}
}

// GET /orders/:orderID — order confirmation lookup
func GetOrderByIDHandler(orders checkout.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "orderID is required"})
			return
		}

		order, err := orders.FindByID(c.Request.Context(), uint(id))
		if err != nil {
			if errors.Is(err, storage.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error retrieving order details"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	}
}

// GET /admin/orders
func GetAllOrdersHandler(orders checkout.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := orders.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": all})
	}
}

// POST /admin/orders/:orderID/confirm
func ConfirmOrderHandler(orders checkout.OrderStore) gin.HandlerFunc {
	return updateStatusHandler(orders, models.OrderStatusConfirmed)
}

// POST /admin/orders/:orderID/cancel
func CancelOrderHandler(orders checkout.OrderStore) gin.HandlerFunc {
	return updateStatusHandler(orders, models.OrderStatusCancelled)
}

func updateStatusHandler(orders checkout.OrderStore, status models.OrderStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "orderID is required"})
			return
		}

		if err := orders.UpdateStatus(c.Request.Context(), uint(id), status); err != nil {
			if errors.Is(err, storage.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update order status"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order status updated"})
	}
}

// GET /admin/orders/export-excel
func ExportOrdersToExcel(orders checkout.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := orders.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "OrderRef", "CustomerName", "Email", "Items",
			"Subtotal", "Shipping", "Tax", "TotalAmount", "Status", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, o := range all {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.OrderRef)
			row.AddCell().SetValue(o.CustomerName)
			row.AddCell().SetValue(o.Email)
			row.AddCell().SetValue(len(o.Items))
			row.AddCell().SetValue(o.Subtotal)
			row.AddCell().SetValue(o.Shipping)
			row.AddCell().SetValue(o.Tax)
			row.AddCell().SetValue(o.TotalAmount)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to write Excel file"})
			return
		}
	}
}
