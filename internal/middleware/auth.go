// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"strings"

	"travelmate/pkg/identity"
	"travelmate/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys for storing the authenticated caller
const (
	IdentityKey = "identity"
)

// Auth returns a middleware that verifies bearer tokens and stores the
// caller's identity in the request context.
func Auth(verifier identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		id, err := verifier.Verify(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(IdentityKey, *id)

		c.Next()
	}
}

// GetIdentity retrieves the authenticated caller from the context.
// The zero Identity is returned when the middleware did not run.
func GetIdentity(c *gin.Context) identity.Identity {
	value, exists := c.Get(IdentityKey)
	if !exists {
		return identity.Identity{}
	}
	return value.(identity.Identity)
}

// GetSubject retrieves the caller's subject uid from the context.
// Returns empty string if not found.
func GetSubject(c *gin.Context) string {
	return GetIdentity(c).Subject
}
