package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"

	"inkpress/src/core/domain"
	"inkpress/src/core/ports"
	"inkpress/src/infra/config"
)

const unavailableMessage = "Authentication service is temporarily unavailable. Please try again later."

var errNoUser = errors.New("auth response has no user")

// GoTrueClient calls a GoTrue-compatible auth service through gotrue-go.
type GoTrueClient struct {
	api     gotrue.Client
	timeout time.Duration
	log     *slog.Logger
}

func NewGoTrueClient(cfg config.AuthConfig, log *slog.Logger) (*GoTrueClient, error) {
	if cfg.URL == "" {
		return nil, errors.New("auth url is required")
	}
	if _, err := url.Parse(cfg.URL); err != nil {
		return nil, fmt.Errorf("parse auth url: %w", err)
	}
	api := gotrue.New("", cfg.AnonKey).WithCustomGoTrueURL(strings.TrimRight(cfg.URL, "/"))
	return &GoTrueClient{api: api, timeout: cfg.Timeout, log: log}, nil
}

// exchange carries ctx into the SDK's requests and keeps the status and body
// of a failed response, which the SDK only reports as text.
type exchange struct {
	ctx    context.Context
	next   http.RoundTripper
	status int
	body   []byte
}

func (e *exchange) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := e.next.RoundTrip(req.WithContext(e.ctx))
	if err != nil {
		return nil, err
	}
	e.status = resp.StatusCode
	if resp.StatusCode >= http.StatusMultipleChoices {
		body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		_ = resp.Body.Close()
		if err != nil {
			return nil, err
		}
		e.body = body
		resp.Body = io.NopCloser(bytes.NewReader(body))
	}
	return resp, nil
}

// session returns an SDK client bound to one call.
func (c *GoTrueClient) session(ctx context.Context) (gotrue.Client, *exchange) {
	ex := &exchange{ctx: ctx, next: http.DefaultTransport}
	return c.api.WithClient(http.Client{Timeout: c.timeout, Transport: ex}), ex
}

type errorBody struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func (e errorBody) text() string {
	for _, s := range []string{e.ErrorDescription, e.Msg, e.Message, e.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

// SignUp registers an account. Rejections are reported as validation errors
// on the email field.
func (c *GoTrueClient) SignUp(ctx context.Context, creds ports.Credentials) (*domain.Session, error) {
	api, ex := c.session(ctx)
	res, err := api.Signup(types.SignupRequest{Email: creds.Email, Password: creds.Password})
	if err != nil {
		if msg, ok := c.rejection("/signup", ex); ok {
			return nil, domain.NewValidationError(domain.FieldEmail, msg)
		}
		return nil, unavailable("/signup", ex, err)
	}

	// Signup with email confirmation enabled returns the bare user.
	s := res.Session
	s.User = res.User
	return toSession(s)
}

// SignIn exchanges email and password for a session. Every rejection reads
// the same so callers cannot tell which accounts exist.
func (c *GoTrueClient) SignIn(ctx context.Context, creds ports.Credentials) (*domain.Session, error) {
	api, ex := c.session(ctx)
	res, err := api.Token(types.TokenRequest{
		GrantType: "password",
		Email:     creds.Email,
		Password:  creds.Password,
	})
	if err != nil {
		if _, ok := c.rejection("/token", ex); ok {
			return nil, domain.NewUnauthorizedError("Invalid email or password")
		}
		return nil, unavailable("/token", ex, err)
	}
	return toSession(res.Session)
}

// Health pings the provider's health endpoint.
func (c *GoTrueClient) Health(ctx context.Context) error {
	api, _ := c.session(ctx)
	if _, err := api.HealthCheck(); err != nil {
		return fmt.Errorf("auth health: %w", err)
	}
	return nil
}

// rejection reports the provider's message when it refused the request with
// a 4xx. Rate limiting counts as an outage.
func (c *GoTrueClient) rejection(path string, ex *exchange) (string, bool) {
	if ex.status < 400 || ex.status >= 500 || ex.status == http.StatusTooManyRequests {
		return "", false
	}
	var eb errorBody
	_ = json.Unmarshal(ex.body, &eb)
	msg := eb.text()
	if msg == "" {
		msg = http.StatusText(ex.status)
	}
	c.log.Info("auth request rejected", "path", path, "status", ex.status, "reason", msg)
	return msg, true
}

func unavailable(path string, ex *exchange, err error) error {
	return domain.NewExternalServiceError(unavailableMessage, fmt.Errorf("auth %s: status=%d: %w", path, ex.status, err))
}

func toSession(s types.Session) (*domain.Session, error) {
	if s.User.ID == uuid.Nil {
		return nil, domain.NewExternalServiceError(unavailableMessage, errNoUser)
	}
	out := &domain.Session{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		TokenType:    s.TokenType,
		User:         domain.User{ID: s.User.ID.String(), Email: s.User.Email},
	}
	switch {
	case s.ExpiresAt > 0:
		out.ExpiresAt = time.Unix(s.ExpiresAt, 0).UTC()
	case s.ExpiresIn > 0:
		out.ExpiresAt = time.Now().Add(time.Duration(s.ExpiresIn) * time.Second).UTC()
	}
	return out, nil
}

var _ ports.IdentityProvider = (*GoTrueClient)(nil)
