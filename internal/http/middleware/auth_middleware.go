package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ibroximov13/FindCourse/domain"
)

// Context keys set by the authentication middleware
const (
	CtxUserID   = "user_id"
	CtxUserRole = "user_role"
	CtxUserIP   = "user_ip"
)

// AuthMiddleware creates authentication middleware. It is a pure function of
// the token and the access secret: no storage lookup happens per request, so
// an already-issued token stays valid until expiry.
func AuthMiddleware(tokenSvc domain.TokenService) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		token, ok := extractBearerToken(authHeader)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := tokenSvc.ValidateAccessToken(token)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrTokenExpired):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			case errors.Is(err, domain.ErrTokenInvalid), errors.Is(err, domain.ErrTokenMalformed):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token validation failed"})
			}
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUserRole, claims.Role)
		c.Set(CtxUserIP, claims.UserIP)

		c.Next()
	})
}

// extractBearerToken pulls the token out of the Authorization header. Some
// clients send a doubled "Bearer Bearer <token>" prefix; tolerate it.
func extractBearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) < 2 || parts[0] != "Bearer" {
		return "", false
	}
	token := parts[1]
	if token == "Bearer" && len(parts) >= 3 {
		token = parts[2]
	}
	if token == "" || token == "Bearer" {
		return "", false
	}
	return token, true
}

// CallerID returns the authenticated user id stored on the context.
func CallerID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// CallerRole returns the authenticated role stored on the context.
func CallerRole(c *gin.Context) (domain.Role, bool) {
	v, ok := c.Get(CtxUserRole)
	if !ok {
		return "", false
	}
	role, ok := v.(domain.Role)
	return role, ok
}
