package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"omufusion/internal/models"
	"omufusion/internal/services"
)

type reviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func GetProductReviews(reviews *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		list, err := reviews.GetByProduct(c.Request.Context(), productID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Reviews could not be fetched"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": list})
	}
}

func AddProductReview(reviews *services.ReviewService, profile *services.UserProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}
		productID, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		var req reviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		userName := ""
		if user, err := profile.GetByID(c.Request.Context(), userID); err == nil {
			userName = user.Name
		}

		review, err := reviews.Add(c.Request.Context(), models.Review{
			ProductID: productID,
			UserID:    userID,
			UserName:  userName,
			Rating:    req.Rating,
			Comment:   req.Comment,
		})
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"data": review})
	}
}
