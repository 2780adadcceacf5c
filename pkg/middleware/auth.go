package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ahmedkhaled2030/bedir-group/internal/models"
	"github.com/ahmedkhaled2030/bedir-group/internal/tokens"
)

const userKey = "currentUser"

// UserResolver is the minimal user lookup the middleware depends on
type UserResolver interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// RequireAuth returns a Gin middleware that verifies the Bearer token and
// resolves its subject to a user record. Any failure (missing header, bad
// token, unknown subject) aborts with 401; handlers behind it never
// re-validate tokens.
func RequireAuth(secret string, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing Authorization header"})
			return
		}
		raw, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid Authorization header"})
			return
		}

		sub, err := tokens.VerifyAccessToken(secret, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		u, err := users.GetByID(c.Request.Context(), sub)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(userKey, u)
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless RequireAuth resolved an admin user.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil || u.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user attached by RequireAuth, or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}
