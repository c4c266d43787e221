package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"omufusion/internal/services"
)

// GetProducts lists storefront products, optionally filtered by category.
func GetProducts(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := strings.TrimSpace(c.Query("category"))

		var err error
		var list any
		if category != "" {
			list, err = products.GetByCategory(c.Request.Context(), category)
		} else {
			list, err = products.GetActive(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Products could not be fetched"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": list})
	}
}

func GetFeaturedProducts(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.GetFeatured(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Products could not be fetched"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": list})
	}
}

func GetProduct(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		product, err := products.GetByID(c.Request.Context(), id)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": product})
	}
}
