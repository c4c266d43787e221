package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"omufusion/internal/models"
	"omufusion/internal/services"
)

type orderContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address" binding:"required"`
	Note    string `json:"note"`
}

type createOrderRequest struct {
	Contact orderContactRequest `json:"contact" binding:"required"`
}

// CreateOrder checks out the user's current cart. The item list and total
// are frozen from the cart contents at this moment.
func CreateOrder(orders *services.OrderService, cart *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		current, err := cart.Get(c.Request.Context(), userID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		if len(current.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}

		items := make([]models.OrderItem, len(current.Items))
		for i, line := range current.Items {
			items[i] = models.OrderItem{
				ProductID: line.ProductID,
				Name:      line.Name,
				Image:     line.Image,
				Price:     line.Price,
				Quantity:  line.Quantity,
			}
		}

		order, err := orders.Create(c.Request.Context(), userID, items, &models.OrderContact{
			Name:    req.Contact.Name,
			Phone:   req.Contact.Phone,
			Address: req.Contact.Address,
			Note:    req.Contact.Note,
		})
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"orderId": order.ID.Hex(),
			"total":   order.TotalPrice,
			"message": "order created",
		})
	}
}

func GetMyOrders(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		list, err := orders.GetByUser(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Orders could not be fetched"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": list})
	}
}

func GetMyOrder(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}
		orderID, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		order, err := orders.GetByID(c.Request.Context(), orderID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		if order.UserID != userID {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		// History is best-effort; the order itself is the answer.
		history := orders.StatusHistory(c.Request.Context(), orderID)
		c.JSON(http.StatusOK, gin.H{"data": order, "statusHistory": history})
	}
}

func CancelMyOrder(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}
		orderID, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		if err := orders.Cancel(c.Request.Context(), orderID, userID); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "order cancelled"})
	}
}
