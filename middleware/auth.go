package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TokenHeader carries the admin token on guarded requests.
const TokenHeader = "x-auth-token"

const adminIDKey = "adminID"

type adminIDCtxKey struct{}

// Authenticator resolves a token to the id of an existing admin.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (uint, error)
}

// RequireAdmin rejects the request with 401 unless x-auth-token names an
// existing admin. Every failure gets the same body.
func RequireAdmin(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := auth.Authenticate(c.Request.Context(), c.GetHeader(TokenHeader))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Token is not valid"})
			return
		}

		c.Set(adminIDKey, id)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), adminIDCtxKey{}, id))
		c.Next()
	}
}

// AdminID returns the admin id stored by RequireAdmin.
func AdminID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(adminIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// AdminIDFromContext is AdminID for code that only holds the request context.
func AdminIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(adminIDCtxKey{}).(uint)
	return id, ok
}
