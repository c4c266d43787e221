package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"omufusion/internal/middleware"
	"omufusion/internal/services"
)

type AdminLoginRequest struct {
	// Login accepts either the account email or the admin username.
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func AdminLogin(admin *services.AdminAuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		user, token, marker, err := admin.Login(c.Request.Context(), req.Login, req.Password)
		if err != nil {
			status := http.StatusUnauthorized
			if errors.Is(err, services.ErrNotAdmin) {
				status = http.StatusForbidden
			}
			c.JSON(status, gin.H{"error": services.AuthErrorMessage(err)})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"accessToken":  token,
			"adminSession": marker,
			"user": gin.H{
				"id":    user.ID.Hex(),
				"name":  user.Name,
				"email": user.Email,
			},
		})
	}
}

func AdminLogout(admin *services.AdminAuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		marker := c.GetHeader(middleware.AdminSessionHeader)
		if err := admin.Logout(c.Request.Context(), marker); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}
