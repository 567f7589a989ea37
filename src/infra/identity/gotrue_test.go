package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkpress/src/core/domain"
	"inkpress/src/core/ports"
	"inkpress/src/infra/config"
	"inkpress/src/infra/logger"
)

var creds = ports.Credentials{Email: "writer@example.com", Password: "hunter22"}

const userID = "5f0c2c8e-2f4b-4d7e-9a53-1b6f2a9d8e41"

func newTestClient(t *testing.T, h http.HandlerFunc) *GoTrueClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewGoTrueClient(config.AuthConfig{
		URL:     srv.URL + "/",
		AnonKey: "anon-key",
		Timeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return c
}

func reply(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestNewGoTrueClient(t *testing.T) {
	_, err := NewGoTrueClient(config.AuthConfig{}, logger.Nop())
	assert.Error(t, err)
}

func TestSignIn(t *testing.T) {
	t.Run("returns the session", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/token", r.URL.Path)
			assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
			assert.Equal(t, "anon-key", r.Header.Get("apikey"))

			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, creds.Email, body["email"])
			assert.Equal(t, creds.Password, body["password"])

			reply(w, http.StatusOK, map[string]any{
				"access_token":  "jwt",
				"token_type":    "bearer",
				"refresh_token": "refresh",
				"expires_at":    1_700_000_000,
				"user":          map[string]string{"id": userID, "email": creds.Email},
			})
		})

		session, err := c.SignIn(context.Background(), creds)

		require.NoError(t, err)
		assert.Equal(t, "jwt", session.AccessToken)
		assert.Equal(t, "refresh", session.RefreshToken)
		assert.Equal(t, userID, session.User.ID)
		assert.Equal(t, time.Unix(1_700_000_000, 0).UTC(), session.ExpiresAt)
	})

	t.Run("rejection reads the same for every account", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			reply(w, http.StatusBadRequest, map[string]string{
				"error":             "invalid_grant",
				"error_description": "Invalid login credentials",
			})
		})

		_, err := c.SignIn(context.Background(), creds)

		require.True(t, domain.IsUnauthorized(err))
		assert.Equal(t, "Invalid email or password", domain.HandleError(nil, err).Message)
	})

	t.Run("server error is an outage", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := c.SignIn(context.Background(), creds)

		require.True(t, domain.IsExternalService(err))
		info := domain.HandleError(nil, err)
		assert.Equal(t, http.StatusServiceUnavailable, info.Status)
		assert.Equal(t, unavailableMessage, info.Message)
	})

	t.Run("rate limiting is an outage", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			reply(w, http.StatusTooManyRequests, map[string]string{"msg": "slow down"})
		})

		_, err := c.SignIn(context.Background(), creds)

		assert.True(t, domain.IsExternalService(err))
	})

	t.Run("session without user", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			reply(w, http.StatusOK, map[string]string{"access_token": "jwt"})
		})

		_, err := c.SignIn(context.Background(), creds)

		assert.True(t, domain.IsExternalService(err))
	})
}

func TestSignInHonoursContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		reply(w, http.StatusOK, map[string]any{"access_token": "jwt"})
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.SignIn(ctx, creds)

	require.True(t, domain.IsExternalService(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSignUp(t *testing.T) {
	t.Run("confirmation pending returns the bare user", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/signup", r.URL.Path)
			reply(w, http.StatusOK, map[string]string{"id": userID, "email": creds.Email})
		})

		session, err := c.SignUp(context.Background(), creds)

		require.NoError(t, err)
		assert.Empty(t, session.AccessToken)
		assert.Equal(t, domain.User{ID: userID, Email: creds.Email}, session.User)
	})

	t.Run("rejection is an email validation error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			reply(w, http.StatusUnprocessableEntity, map[string]string{"msg": "User already registered"})
		})

		_, err := c.SignUp(context.Background(), creds)

		require.True(t, domain.IsValidationError(err))
		info := domain.HandleError(nil, err)
		assert.Equal(t, domain.FieldEmail, info.Field)
		assert.Equal(t, "User already registered", info.Message)
	})
}

func TestGoTrueHealth(t *testing.T) {
	var healthy atomic.Bool
	healthy.Store(true)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		if !healthy.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		reply(w, http.StatusOK, map[string]string{"name": "GoTrue", "version": "v2.150.0"})
	})

	assert.NoError(t, c.Health(context.Background()))

	healthy.Store(false)
	assert.Error(t, c.Health(context.Background()))
}
