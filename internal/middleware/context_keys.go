package middleware

import "github.com/gin-gonic/gin"

// Keys used to store the authenticated user's identity in the request context.
const (
	userIDKey   = contextKey("userID")
	userRoleKey = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (int64, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return 0, false
	}
	userID, ok := userIDVal.(int64)
	if !ok {
		return 0, false
	}
	return userID, true
}

// GetUserRoleFromContext retrieves the authenticated user's role from the Gin
// context.
func GetUserRoleFromContext(c *gin.Context) (string, bool) {
	roleVal := c.Request.Context().Value(userRoleKey)
	if roleVal == nil {
		return "", false
	}
	role, ok := roleVal.(string)
	if !ok {
		return "", false
	}
	return role, true
}
