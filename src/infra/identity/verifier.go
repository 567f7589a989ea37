package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"inkpress/src/core/domain"
	"inkpress/src/core/ports"
)

var errMissingSubject = errors.New("token missing sub claim")

type accessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Verifier validates bearer tokens carried in the request context.
type Verifier struct {
	secret   []byte
	audience string
}

// NewVerifier creates a verifier for tokens signed with secret. An empty
// audience disables the aud check.
func NewVerifier(secret, audience string) (*Verifier, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &Verifier{secret: []byte(secret), audience: audience}, nil
}

// Parse validates a token and returns the user it identifies.
func (v *Verifier) Parse(token string) (*domain.User, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	var claims accessClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return nil, errMissingSubject
	}
	return &domain.User{ID: claims.Subject, Email: claims.Email}, nil
}

// CurrentUser resolves the caller from the token stored with
// domain.WithAccessToken.
func (v *Verifier) CurrentUser(ctx context.Context) (*domain.User, error) {
	token := domain.AccessToken(ctx)
	if token == "" {
		return nil, domain.NewUnauthorizedError("")
	}
	user, err := v.Parse(token)
	if err != nil {
		return nil, &domain.DomainError{
			Base:    domain.ErrUnauthorized,
			Message: "Authentication required",
			Cause:   err,
		}
	}
	return user, nil
}

var _ ports.Authenticator = (*Verifier)(nil)
