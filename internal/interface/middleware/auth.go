package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/product-market-api/pkg/helpers"
	"github.com/oksasatya/product-market-api/pkg/response"
)

const identityKey = "identity"

// Identity is the authenticated caller derived from a validated token.
// UserID is zero when the token carried no id claim; such an identity can
// read but never passes an ownership check.
type Identity struct {
	Email  string
	UserID int64
}

// RequireAuth is the single authentication entry point for every protected
// route, read and write alike. It extracts the bearer token, validates it,
// and stores the typed Identity in the request context for handlers.
func RequireAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.AbortError(c, http.StatusUnauthorized, "Unauthorized access. No token provided.", nil)
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			return
		}

		c.Set(identityKey, Identity{Email: claims.Subject, UserID: claims.UserID})
		c.Next()
	}
}

// CurrentIdentity returns the identity set by RequireAuth.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}
