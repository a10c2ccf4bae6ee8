package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/todo-api/internal/constants"
	apierrors "github.com/yukikurage/todo-api/internal/errors"
)

// TokenVerifier resolves a bearer token to the user id it was issued for.
type TokenVerifier interface {
	Verify(token string) (uint64, error)
}

// RequireAuth checks the bearer token in the Authorization header.
// Invalid and expired tokens get the same response.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader(constants.HeaderAuthorization))
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		userID, err := verifier.Verify(token)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			return
		}

		// Store user ID in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	v, ok := userID.(uint64)
	if !ok || v == 0 {
		return 0, false
	}
	return v, true
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, constants.BearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
