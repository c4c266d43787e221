package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"omufusion/internal/services"
)

func AdminGetUsers(profile *services.UserProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := profile.GetAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Users could not be fetched"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": users})
	}
}

// AdminSuspendUser flips an account's active flag without touching anything
// else; a suspended account keeps its data but cannot sign in.
func AdminSuspendUser(profile *services.UserProfileService) gin.HandlerFunc {
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

		if err := profile.Suspend(c.Request.Context(), id, *req.IsActive); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "account state updated"})
	}
}

func AdminPromoteUser(profile *services.UserProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		var req struct {
			Role string `json:"role" binding:"required,oneof=customer admin moderator"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if err := profile.Promote(c.Request.Context(), id, req.Role); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "role updated"})
	}
}

func AdminDeleteUser(profile *services.UserProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		if err := profile.SoftDelete(c.Request.Context(), id); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
	}
}
