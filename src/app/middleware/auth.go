package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"inkpress/src/core/domain"
)

var (
	ErrMissingHeader = errors.New("missing authorization header")
	ErrInvalidFormat = errors.New("invalid authorization header")
	ErrEmptyToken    = errors.New("empty token")
)

// ExtractBearerToken extracts the Bearer token from the Authorization header.
func ExtractBearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", ErrMissingHeader
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrInvalidFormat
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", ErrEmptyToken
	}
	return token, nil
}

// BearerToken copies the caller's access token into the request context.
// It never rejects a request: operations that need an identity verify the
// token themselves and answer with their own authentication error.
func BearerToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := ExtractBearerToken(c); err == nil {
			c.Request = c.Request.WithContext(domain.WithAccessToken(c.Request.Context(), token))
		}
		c.Next()
	}
}
