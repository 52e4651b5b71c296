package ticketController

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/anamkhan-2/bzooo-webtechProject/catalog"
	"github.com/anamkhan-2/bzooo-webtechProject/models"
)

type TicketInput struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

// GET /tickets
func GetTickets(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1️⃣ Filtering & pagination params
		category := c.Query("category")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
		if limit < 1 || limit > 100 {
			limit = 10
		}
		sortOrder := strings.ToLower(c.DefaultQuery("order", "asc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "asc"
		}

		// 2️⃣ Build base query
		query := db.Model(&models.Ticket{})

		if category != "" {
			query = query.Where("category = ?", category)
		}
		if minPriceStr != "" {
			if mp, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
				query = query.Where("price >= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid min_price"})
				return
			}
		}
		if maxPriceStr != "" {
			if mp, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
				query = query.Where("price <= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid max_price"})
				return
			}
		}

		// 3️⃣ Count before paging
		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch tickets"})
			return
		}

		// 4️⃣ Fetch page
		var tickets []models.Ticket
		if err := query.
			Order("price " + sortOrder).
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&tickets).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch tickets"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"tickets": tickets,
			"total":   total,
			"page":    page,
			"limit":   limit,
		})
	}
}

// GET /tickets/:id
func GetTicketByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ticket models.Ticket
		if err := db.First(&ticket, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Ticket not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch ticket"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "ticket": ticket})
	}
}

// POST /admin/tickets
func CreateTicket(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input TicketInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "name and price are required"})
			return
		}

		ticket := models.Ticket{
			Name:        input.Name,
			Price:       input.Price,
			Description: input.Description,
			Category:    input.Category,
		}
		if err := db.Create(&ticket).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create ticket"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "ticket": ticket})
	}
}

// PUT /admin/tickets/:id
func UpdateTicket(db *gorm.DB, cache *catalog.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid ticket id"})
			return
		}

		var input TicketInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "name and price are required"})
			return
		}

		var ticket models.Ticket
		if err := db.First(&ticket, "id = ?", uint(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Ticket not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch ticket"})
			return
		}

		ticket.Name = input.Name
		ticket.Price = input.Price
		ticket.Description = input.Description
		ticket.Category = input.Category
		if err := db.Save(&ticket).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update ticket"})
			return
		}

		// Carts pick up the new price on the next add of this ticket.
		if cache != nil {
			cache.Invalidate(ticket.ID)
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "ticket": ticket})
	}
}

// DELETE /admin/tickets/:id
func DeleteTicket(db *gorm.DB, cache *catalog.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid ticket id"})
			return
		}

		result := db.Delete(&models.Ticket{}, uint(id))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete ticket"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Ticket not found"})
			return
		}

		if cache != nil {
			cache.Invalidate(uint(id))
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Ticket deleted"})
	}
}
