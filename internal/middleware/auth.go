package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"cat-shelter-server/internal/config"
	"cat-shelter-server/internal/utils"
)

// AuthMiddleware creates a middleware validating staff session tokens.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			utils.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := utils.ValidateSessionToken(parts[1], cfg.SessionSecret)
		if err != nil {
			utils.Unauthorized(c, "Invalid token: "+err.Error())
			c.Abort()
			return
		}

		// Set staff information in context for downstream handlers
		c.Set("employeeID", claims.EmployeeID)
		c.Set("employeeName", claims.Name)

		c.Next()
	}
}

// GetEmployeeIDFromContext returns the authenticated employee's id, if any.
func GetEmployeeIDFromContext(c *gin.Context) (string, bool) {
	employeeID, exists := c.Get("employeeID")
	if !exists {
		return "", false
	}
	idStr, ok := employeeID.(string)
	return idStr, ok
}
