package ports

import (
	"context"

	"inkpress/src/core/domain"
)

// ExternalService is the base interface for external service adapters.
type ExternalService interface {
	// Health checks if the external service is reachable.
	Health(ctx context.Context) error
}

// Authenticator resolves the caller of the current request.
// It returns a domain Unauthorized error when there is no valid identity.
type Authenticator interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
}

// Credentials is an email/password pair submitted to the identity provider.
type Credentials struct {
	Email    string
	Password string
}

// IdentityProvider is the external auth service that owns user accounts.
type IdentityProvider interface {
	SignUp(ctx context.Context, creds Credentials) (*domain.Session, error)
	SignIn(ctx context.Context, creds Credentials) (*domain.Session, error)
}

// AIProvider sends a single prompt to a generative model and returns its raw
// text response.
type AIProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ViewInvalidator tells the presentation layer that cached renderings of a
// path are stale.
type ViewInvalidator interface {
	Revalidate(ctx context.Context, path string) error
}

// PostPublished is emitted when a post becomes publicly visible.
type PostPublished struct {
	PostID string
	Slug   string
	Title  string
	UserID string
}

// EventPublisher announces domain events to other services.
type EventPublisher interface {
	PublishPostPublished(ctx context.Context, e PostPublished) error
}

// RenderedMarkdown is HTML produced from post content.
type RenderedMarkdown struct {
	HTML     string
	Excerpt  string
	Headings []Heading
}

// Heading is a document heading with its anchor id.
type Heading struct {
	Level int    `json:"level"`
	ID    string `json:"id"`
	Text  string `json:"text"`
}

// MarkdownRenderer turns Markdown source into HTML.
type MarkdownRenderer interface {
	Render(src []byte) (RenderedMarkdown, error)
}
