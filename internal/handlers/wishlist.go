package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"omufusion/internal/models"
	"omufusion/internal/services"
)

type wishlistAddRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

func GetWishlist(wishlist *services.WishlistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		list, err := wishlist.Get(c.Request.Context(), userID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"wishlist": list})
	}
}

func AddToWishlist(wishlist *services.WishlistService, products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		var req wishlistAddRequest
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

		list, err := wishlist.AddItem(c.Request.Context(), userID, models.WishlistItem{
			ProductID: product.ID,
			Name:      product.Name,
			Image:     image,
			Price:     product.Price,
		})
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"wishlist": list})
	}
}

func RemoveFromWishlist(wishlist *services.WishlistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}
		productID, ok := objectIDParam(c, "productId")
		if !ok {
			return
		}

		list, err := wishlist.RemoveItem(c.Request.Context(), userID, productID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"wishlist": list})
	}
}

func ClearWishlist(wishlist *services.WishlistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		if err := wishlist.Clear(c.Request.Context(), userID); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "wishlist cleared"})
	}
}
