package middleware

import (
	"net/http"
	"strings"

	"github.com/betselot-m/kindcart/internal/handler/http/dto"
	"github.com/gin-gonic/gin"
)

// TokenVerifier validates a bearer token and returns the authenticated user id.
type TokenVerifier interface {
	VerifyAccessToken(token string) (string, error)
}

// AuthMiddleWare rejects requests without a verified caller identity and sets
// "userID" on the context for downstream handlers.
func AuthMiddleWare(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authenticate(c, verifier)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not authenticated"})
			return
		}
		c.Set("userID", userID)
		c.Next()
	}
}

// OptionalAuthMiddleWare sets "userID" when a valid token is present and lets
// anonymous requests through untouched. Read endpoints use it so the
// projection can compute is_liked_by_user for signed-in viewers.
func OptionalAuthMiddleWare(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := authenticate(c, verifier); ok {
			c.Set("userID", userID)
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, verifier TokenVerifier) (string, bool) {
	header := c.GetHeader("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	userID, err := verifier.VerifyAccessToken(token)
	if err != nil {
		return "", false
	}
	return userID, true
}
