package middleware

import (
	"github.com/SscSPs/investor_onboarding_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDKey    = contextKey("userID")
	roleKey      = contextKey("role")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userIDVal, exists := c.Get(string(userIDKey)); exists {
		userID, ok := userIDVal.(string)
		return userID, ok && userID != ""
	}
	// check in the request context as well
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetRoleFromContext retrieves the caller's role. An absent role claim is treated as INVESTOR.
func GetRoleFromContext(c *gin.Context) domain.Role {
	if roleVal, exists := c.Get(string(roleKey)); exists {
		if role, ok := roleVal.(domain.Role); ok && role != "" {
			return role
		}
	}
	if role, ok := c.Request.Context().Value(roleKey).(domain.Role); ok && role != "" {
		return role
	}
	return domain.RoleInvestor
}
