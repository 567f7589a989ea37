package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkpress/src/core/domain"
)

const testSecret = "super-secret-jwt-key"

func sign(t *testing.T, method jwt.SigningMethod, secret string, claims accessClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims() accessClaims {
	return accessClaims{
		Email: "writer@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Audience:  jwt.ClaimStrings{"authenticated"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func TestNewVerifier(t *testing.T) {
	_, err := NewVerifier("", "authenticated")
	assert.Error(t, err)
}

func TestVerifierParse(t *testing.T) {
	v, err := NewVerifier(testSecret, "authenticated")
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		user, err := v.Parse(sign(t, jwt.SigningMethodHS256, testSecret, validClaims()))

		require.NoError(t, err)
		assert.Equal(t, &domain.User{ID: "user-1", Email: "writer@example.com"}, user)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := v.Parse(sign(t, jwt.SigningMethodHS256, "other-secret", validClaims()))

		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("unexpected algorithm", func(t *testing.T) {
		_, err := v.Parse(sign(t, jwt.SigningMethodHS512, testSecret, validClaims()))

		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		claims := validClaims()
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

		_, err := v.Parse(sign(t, jwt.SigningMethodHS256, testSecret, claims))

		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("missing expiry", func(t *testing.T) {
		claims := validClaims()
		claims.ExpiresAt = nil

		_, err := v.Parse(sign(t, jwt.SigningMethodHS256, testSecret, claims))

		assert.ErrorIs(t, err, jwt.ErrTokenRequiredClaimMissing)
	})

	t.Run("wrong audience", func(t *testing.T) {
		claims := validClaims()
		claims.Audience = jwt.ClaimStrings{"anon"}

		_, err := v.Parse(sign(t, jwt.SigningMethodHS256, testSecret, claims))

		assert.ErrorIs(t, err, jwt.ErrTokenInvalidAudience)
	})

	t.Run("missing subject", func(t *testing.T) {
		claims := validClaims()
		claims.Subject = ""

		_, err := v.Parse(sign(t, jwt.SigningMethodHS256, testSecret, claims))

		assert.ErrorIs(t, err, errMissingSubject)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := v.Parse("not-a-jwt")

		assert.Error(t, err)
	})
}

func TestVerifierWithoutAudience(t *testing.T) {
	v, err := NewVerifier(testSecret, "")
	require.NoError(t, err)

	claims := validClaims()
	claims.Audience = nil

	user, err := v.Parse(sign(t, jwt.SigningMethodHS256, testSecret, claims))
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
}

func TestVerifierCurrentUser(t *testing.T) {
	v, err := NewVerifier(testSecret, "authenticated")
	require.NoError(t, err)

	t.Run("no token", func(t *testing.T) {
		_, err := v.CurrentUser(context.Background())

		assert.True(t, domain.IsUnauthorized(err))
	})

	t.Run("invalid token", func(t *testing.T) {
		ctx := domain.WithAccessToken(context.Background(), "not-a-jwt")

		_, err := v.CurrentUser(ctx)

		require.True(t, domain.IsUnauthorized(err))
		assert.Equal(t, "Authentication required", domain.HandleError(nil, err).Message)
	})

	t.Run("valid token", func(t *testing.T) {
		ctx := domain.WithAccessToken(context.Background(), sign(t, jwt.SigningMethodHS256, testSecret, validClaims()))

		user, err := v.CurrentUser(ctx)

		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
	})
}
