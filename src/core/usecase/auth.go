package usecase

import (
	"context"
	"log/slog"
	"strings"

	"inkpress/src/core/domain"
	"inkpress/src/core/ports"
)

// AuthService is the login/signup boundary. It validates credentials locally
// and delegates account handling to the identity provider.
type AuthService struct {
	idp ports.IdentityProvider
	log *slog.Logger
}

func NewAuthService(idp ports.IdentityProvider, log *slog.Logger) *AuthService {
	return &AuthService{idp: idp, log: log}
}

// SignUp registers a new account.
func (s *AuthService) SignUp(ctx context.Context, email, password string) ActionResult[*domain.Session] {
	return s.submit(ctx, email, password, s.idp.SignUp)
}

// SignIn exchanges credentials for a session.
func (s *AuthService) SignIn(ctx context.Context, email, password string) ActionResult[*domain.Session] {
	return s.submit(ctx, email, password, s.idp.SignIn)
}

func (s *AuthService) submit(
	ctx context.Context,
	email, password string,
	call func(context.Context, ports.Credentials) (*domain.Session, error),
) ActionResult[*domain.Session] {
	email = strings.TrimSpace(email)
	if res := domain.ValidateCredentials(email, password); !res.IsValid {
		return failFields[*domain.Session](res.Errors)
	}

	session, err := call(ctx, ports.Credentials{Email: email, Password: password})
	if err != nil {
		if domain.IsExternalService(err) {
			s.log.Error("identity provider unavailable", "error", err)
		}
		return failWith[*domain.Session](domain.HandleError(s.log, err))
	}
	return succeed(session)
}
