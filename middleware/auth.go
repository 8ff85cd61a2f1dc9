package middleware

import (
	"net/http"
	"strings"

	"github.com/yihao03/Aistronaut/models"
	"github.com/yihao03/Aistronaut/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and stores the caller's identity
// in the request context for handlers to read.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, username, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("identity", models.Identity{
			UserID:   userID,
			Username: username,
			Token:    tokenString,
		})
		c.Next()
	}
}

// IdentityFromContext returns the identity stored by AuthMiddleware, or a
// zero identity for unauthenticated requests.
func IdentityFromContext(c *gin.Context) models.Identity {
	if v, ok := c.Get("identity"); ok {
		if identity, ok := v.(models.Identity); ok {
			return identity
		}
	}
	return models.Identity{}
}
