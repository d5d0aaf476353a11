package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/resumecoach/backend/models"
)

// SessionClaimsKey is the key used to store session claims in gin context
const SessionClaimsKey = "session_claims"

// SessionMiddleware requires a bearer token issued for a chat session
func SessionMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error: "Authorization header required",
				Code:  http.StatusUnauthorized,
			})
			return
		}

		// Check Bearer token format
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error: "Invalid authorization header format",
				Code:  http.StatusUnauthorized,
			})
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "Invalid or expired session token",
				Code:    http.StatusUnauthorized,
				Details: err.Error(),
			})
			return
		}

		c.Set(SessionClaimsKey, claims)
		c.Next()
	}
}

// GetSessionClaims retrieves session claims from gin context
func GetSessionClaims(c *gin.Context) *Claims {
	claims, exists := c.Get(SessionClaimsKey)
	if !exists {
		return nil
	}
	return claims.(*Claims)
}
