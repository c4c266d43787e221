package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"omufusion/internal/models"
	"omufusion/internal/services"
)

type cartAddRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type cartQuantityRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}

func GetCart(cart *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		current, err := cart.Get(c.Request.Context(), userID)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"cart":      current,
			"total":     current.Total(),
			"itemCount": current.ItemCount(),
		})
	}
}

// AddToCart resolves the product server-side so the stored line carries the
// catalog price, not whatever the client sent.
func AddToCart(cart *services.CartService, products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		var req cartAddRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		productID, ok := parseHexID(c, req.ProductID, "productId")
		if !ok {
			return
		}

		product, err := products.GetByID(c.Request.Context(), productID)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}

		updated, err := cart.AddItem(c.Request.Context(), userID, models.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Image:     image,
			Price:     product.Price,
			Quantity:  req.Quantity,
		})
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"cart": updated, "total": updated.Total()})
	}
}

func UpdateCartItem(cart *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}
		productID, ok := objectIDParam(c, "productId")
		if !ok {
			return
		}

		var req cartQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		updated, err := cart.UpdateQuantity(c.Request.Context(), userID, productID, req.Quantity)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": updated, "total": updated.Total()})
	}
}

func RemoveCartItem(cart *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}
		productID, ok := objectIDParam(c, "productId")
		if !ok {
			return
		}

		updated, err := cart.RemoveItem(c.Request.Context(), userID, productID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": updated, "total": updated.Total()})
	}
}

func ClearCart(cart *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		if err := cart.Clear(c.Request.Context(), userID); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
	}
}
