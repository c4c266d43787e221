package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"omufusion/internal/models"
	"omufusion/internal/services"
)

type updateProfileRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Phone string `json:"phone" binding:"omitempty,max=32"`
}

type addressRequest struct {
	Title     string `json:"title" binding:"required,max=60"`
	Detail    string `json:"detail" binding:"required,max=500"`
	City      string `json:"city" binding:"omitempty,max=60"`
	IsDefault bool   `json:"isDefault"`
}

func UpdateProfile(profile *services.UserProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		var req updateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if err := profile.UpdateProfile(c.Request.Context(), userID, req.Name, req.Phone); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
	}
}

func UpdatePreferences(profile *services.UserProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		var prefs map[string]string
		if err := c.ShouldBindJSON(&prefs); err != nil {
			respondValidationError(c, err)
			return
		}

		if err := profile.UpdatePreferences(c.Request.Context(), userID, prefs); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "preferences updated"})
	}
}

func AddAddress(profile *services.UserProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		var req addressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		saved, err := profile.AddAddress(c.Request.Context(), userID, models.Address{
			Title:     req.Title,
			Detail:    req.Detail,
			City:      req.City,
			IsDefault: req.IsDefault,
		})
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"data": saved})
	}
}

func UpdateAddress(profile *services.UserProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		var req addressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		err := profile.UpdateAddress(c.Request.Context(), userID, models.Address{
			ID:        c.Param("addressId"),
			Title:     req.Title,
			Detail:    req.Detail,
			City:      req.City,
			IsDefault: req.IsDefault,
		})
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "address updated"})
	}
}

func RemoveAddress(profile *services.UserProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		if err := profile.RemoveAddress(c.Request.Context(), userID, c.Param("addressId")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "address removed"})
	}
}

func SetDefaultAddress(profile *services.UserProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		if err := profile.SetDefaultAddress(c.Request.Context(), userID, c.Param("addressId")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "default address updated"})
	}
}
