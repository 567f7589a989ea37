package domain

import (
	"context"
	"strings"
)

// Field limits for posts and AI requests, in characters.
const (
	MaxTitleLength     = 200
	MaxSlugLength      = 200
	MaxContentLength   = 100_000
	MaxAIContentLength = 50_000
	MinPasswordLength  = 8
)

type accessTokenKey struct{}

// WithAccessToken returns a context carrying the caller's bearer token.
// The token is verified by ports.Authenticator on every operation that needs
// an identity.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// AccessToken returns the bearer token stored by WithAccessToken, or "".
func AccessToken(ctx context.Context) string {
	token, _ := ctx.Value(accessTokenKey{}).(string)
	return token
}

func trimSpace(s string) string {
	return strings.TrimSpace(s)
}
