package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"omufusion/internal/services"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type PasswordResetRequest struct {
	Email string `json:"email" binding:"required"`
}

type EmailVerificationRequest struct {
	Email string `json:"email" binding:"required"`
}

func Register(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		user, err := auth.Register(c.Request.Context(), req.Email, req.Password, req.Name)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": services.AuthErrorMessage(err)})
			return
		}

		token, err := auth.IssueToken(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"accessToken": token,
			"user": gin.H{
				"id":    user.ID.Hex(),
				"name":  user.Name,
				"email": user.Email,
			},
		})
	}
}

func Login(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		user, token, err := auth.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": services.AuthErrorMessage(err)})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"accessToken": token,
			"user": gin.H{
				"id":    user.ID.Hex(),
				"name":  user.Name,
				"email": user.Email,
				"role":  user.Role,
			},
		})
	}
}

// RequestPasswordReset issues the reset token. The response is identical
// whether or not the account exists.
func RequestPasswordReset(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PasswordResetRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if _, err := auth.PasswordResetToken(c.Request.Context(), req.Email); err != nil {
			log.Println("[AUTH] [WARN] password reset request:", err)
		}

		c.JSON(http.StatusOK, gin.H{"message": "If the account exists, a reset email has been sent."})
	}
}

// RequestEmailVerification issues the verification token embedded in the
// confirmation link. Like the reset flow, the response never reveals whether
// the account exists.
func RequestEmailVerification(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req EmailVerificationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if _, err := auth.EmailVerificationToken(c.Request.Context(), req.Email); err != nil {
			log.Println("[AUTH] [WARN] email verification request:", err)
		}

		c.JSON(http.StatusOK, gin.H{"message": "If the account exists, a verification email has been sent."})
	}
}

// Logout is stateless on the server side; access tokens simply expire. The
// endpoint exists so clients have a single place to end a session.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}

func GetMe(profile *services.UserProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		user, err := profile.GetByID(c.Request.Context(), userID)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":          user.ID.Hex(),
			"email":       user.Email,
			"name":        user.Name,
			"phone":       user.Phone,
			"role":        user.Role,
			"addresses":   user.Addresses,
			"preferences": user.Preferences,
			"createdAt":   user.CreatedAt,
			"updatedAt":   user.UpdatedAt,
		})
	}
}
