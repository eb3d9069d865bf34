package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the caller's user ID in the Gin and request contexts.
const userIDKey = contextKey("userID")

// UserIDHeader names the caller on every request. There is no authentication.
const UserIDHeader = "X-User-ID"

// UserIdentity records the caller named by the X-User-ID header, or defaultUserID
// when the header is absent, for use in audit fields.
func UserIdentity(defaultUserID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			userID = defaultUserID
		}
		c.Set(string(userIDKey), userID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), userIDKey, userID))
		c.Next()
	}
}

// GetUserIDFromContext retrieves the caller's user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		if userID, ok := c.Request.Context().Value(userIDKey).(string); ok {
			return userID, true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}
