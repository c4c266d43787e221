package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"omufusion/internal/services"
)

// AdminSessionHeader carries the session marker issued at admin login.
const AdminSessionHeader = "X-Admin-Session"

// AdminAuth guards the back-office. It needs both a valid user token and a
// live admin session marker, so promoting a JWT alone never opens the admin
// surface.
func AdminAuth(secret string, admin *services.AdminAuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, secret)
		if !ok {
			return
		}

		marker := strings.TrimSpace(c.GetHeader(AdminSessionHeader))
		userID, ok, err := admin.ValidateMarker(c.Request.Context(), marker)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session check failed"})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin session required"})
			return
		}

		// The marker's owner must match the token subject.
		tokenUserID, _ := claims["userId"].(string)
		if tokenUserID == "" || tokenUserID != userID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin session required"})
			return
		}

		adminID, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin session required"})
			return
		}

		c.Set("userId", adminID)
		c.Set("adminSession", marker)
		if email, _ := claims["email"].(string); email != "" {
			c.Set("email", email)
		}
		c.Next()
	}
}
