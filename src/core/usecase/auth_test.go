package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkpress/src/core/domain"
	"inkpress/src/core/ports"
)

func TestSignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid credentials never reach the provider", func(t *testing.T) {
		idp := &mockIdentity{}
		svc := NewAuthService(idp, nopLogger())

		res := svc.SignIn(ctx, "not-an-email", "short")

		assert.False(t, res.Success)
		assert.Equal(t, "Please enter a valid email address", res.Errors["email"])
		assert.Equal(t, "Password must be at least 8 characters", res.Errors["password"])
		assert.Zero(t, idp.calls)
	})

	t.Run("returns the provider session", func(t *testing.T) {
		idp := &mockIdentity{signIn: func(_ context.Context, creds ports.Credentials) (*domain.Session, error) {
			assert.Equal(t, "alice@example.com", creds.Email)
			return &domain.Session{AccessToken: "tok", User: *alice}, nil
		}}
		svc := NewAuthService(idp, nopLogger())

		res := svc.SignIn(ctx, "  alice@example.com ", "password1")

		require.True(t, res.Success)
		assert.Equal(t, "tok", res.Data.AccessToken)
	})

	t.Run("rejection is an auth error", func(t *testing.T) {
		idp := &mockIdentity{signIn: func(context.Context, ports.Credentials) (*domain.Session, error) {
			return nil, domain.NewUnauthorizedError("Invalid email or password")
		}}
		svc := NewAuthService(idp, nopLogger())

		res := svc.SignIn(ctx, "alice@example.com", "password1")

		assert.Equal(t, "Invalid email or password", res.Error)
		assert.Equal(t, http.StatusUnauthorized, res.Status)
	})

	t.Run("provider outage", func(t *testing.T) {
		idp := &mockIdentity{signIn: func(context.Context, ports.Credentials) (*domain.Session, error) {
			return nil, domain.NewExternalServiceError("Authentication service is temporarily unavailable. Please try again later.", errors.New("dial tcp"))
		}}
		svc := NewAuthService(idp, nopLogger())

		res := svc.SignIn(ctx, "alice@example.com", "password1")

		assert.Equal(t, "EXTERNAL_SERVICE_ERROR", res.Code)
		assert.Equal(t, http.StatusServiceUnavailable, res.Status)
	})
}

func TestSignUp(t *testing.T) {
	idp := &mockIdentity{signUp: func(context.Context, ports.Credentials) (*domain.Session, error) {
		return nil, domain.NewValidationError(domain.FieldEmail, "User already registered")
	}}
	svc := NewAuthService(idp, nopLogger())

	res := svc.SignUp(context.Background(), "alice@example.com", "password1")

	assert.Equal(t, "User already registered", res.Error)
	assert.Equal(t, "VALIDATION_ERROR", res.Code)
	assert.Equal(t, 1, idp.calls)
}
