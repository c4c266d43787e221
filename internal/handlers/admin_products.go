package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"omufusion/internal/models"
	"omufusion/internal/services"
)

type productRequest struct {
	Name        string   `json:"name" binding:"required,min=2,max=200"`
	Description string   `json:"description" binding:"omitempty,max=5000"`
	Price       float64  `json:"price" binding:"required,gte=0"`
	Category    string   `json:"category" binding:"omitempty,max=100"`
	Stock       *int     `json:"stock" binding:"required,gte=0"`
	Images      []string `json:"images"`
	Status      string   `json:"status" binding:"omitempty,oneof=new sale"`
	IsActive    *bool    `json:"isActive"`
	IsFeatured  bool     `json:"isFeatured"`
}

// AdminGetProducts lists the whole catalog, inactive products included.
func AdminGetProducts(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.GetAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Products could not be fetched"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": list})
	}
}

func AdminCreateProduct(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		active := true
		if req.IsActive != nil {
			active = *req.IsActive
		}

		created, err := products.Create(c.Request.Context(), models.Product{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Category:    req.Category,
			Stock:       *req.Stock,
			Images:      models.StringList(req.Images),
			Status:      req.Status,
			IsActive:    active,
			IsFeatured:  req.IsFeatured,
		})
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"data": created})
	}
}

func AdminUpdateProduct(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		fields := bson.M{
			"name":        req.Name,
			"description": req.Description,
			"price":       req.Price,
			"category":    req.Category,
			"stock":       *req.Stock,
			"status":      req.Status,
			"isFeatured":  req.IsFeatured,
		}
		if req.Images != nil {
			fields["images"] = models.StringList(req.Images)
		}
		if req.IsActive != nil {
			fields["isActive"] = *req.IsActive
		}

		if err := products.Update(c.Request.Context(), id, fields); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "product updated"})
	}
}

func AdminUpdateProductStock(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		var req struct {
			Stock *int `json:"stock" binding:"required,gte=0"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if err := products.UpdateStock(c.Request.Context(), id, *req.Stock); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "stock updated"})
	}
}

func AdminSetProductActive(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		var req struct {
			IsActive *bool `json:"isActive" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if err := products.SetActive(c.Request.Context(), id, *req.IsActive); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "product visibility updated"})
	}
}

func AdminDeleteProduct(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		if err := products.Delete(c.Request.Context(), id); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
	}
}
