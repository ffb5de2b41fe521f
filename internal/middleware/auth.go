package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"article-generator/internal/apperror"
	"article-generator/internal/domain"
	"article-generator/internal/logger"
)

// UserKey is the context key for the authenticated identity.
const UserKey = "user"

var errMissingBearer = errors.New("missing bearer token")

// Verifier resolves a bearer token to a user.
type Verifier interface {
	Verify(ctx context.Context, token string) (*domain.Identity, error)
}

// RequireUser rejects requests without a verifiable bearer token with 401
// UNAUTHORIZED and stores the identity for handlers.
func RequireUser(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, errMissingBearer)
			return
		}

		user, err := v.Verify(c.Request.Context(), token)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		c.Set(UserKey, *user)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abortUnauthorized(c *gin.Context, cause error) {
	logger.WithRequest(GetRequestID(c), GetClientID(c)).
		Warn("Authentication failed", slog.String("error", apperror.RedactErr(cause)))

	appErr := apperror.Unauthorized(cause)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": appErr.Message,
		"code":  appErr.Code,
	})
}

// GetUser retrieves the authenticated identity from the gin context.
func GetUser(c *gin.Context) (domain.Identity, bool) {
	v, exists := c.Get(UserKey)
	if !exists {
		return domain.Identity{}, false
	}
	user, ok := v.(domain.Identity)
	return user, ok
}
