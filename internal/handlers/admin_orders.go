package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"omufusion/internal/models"
	"omufusion/internal/services"
)

func AdminGetOrders(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.GetAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Orders could not be fetched"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": list})
	}
}

func AdminGetOrder(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		order, err := orders.GetByID(c.Request.Context(), id)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		history := orders.StatusHistory(c.Request.Context(), id)
		c.JSON(http.StatusOK, gin.H{"data": order, "statusHistory": history})
	}
}

// AdminUpdateOrderStatus moves an order along the fulfilment pipeline and
// records who made the change in the status history.
func AdminUpdateOrderStatus(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		var req struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}
		if !models.ValidOrderStatus(req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order status"})
			return
		}

		changedBy := "admin"
		if email, exists := c.Get("email"); exists {
			if s, ok := email.(string); ok && s != "" {
				changedBy = s
			}
		}

		if err := orders.UpdateStatus(c.Request.Context(), id, req.Status, changedBy); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "order status updated"})
	}
}
