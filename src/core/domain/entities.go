package domain

import (
	"time"

	"github.com/google/uuid"
)

// PostStatus is the visibility state of a post.
type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
)

// Valid reports whether s is one of the persisted status literals.
func (s PostStatus) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Post is a Markdown blog post owned by a single user.
// Only published posts are visible to unauthenticated readers.
type Post struct {
	ID        uuid.UUID  `json:"id"`
	UserID    string     `json:"user_id"`
	Title     string     `json:"title"`
	Slug      string     `json:"slug"`
	Content   *string    `json:"content"`
	Status    PostStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// IsPublished reports whether the post is publicly visible.
func (p *Post) IsPublished() bool {
	return p.Status == StatusPublished
}

// OwnedBy reports whether userID owns the post.
func (p *Post) OwnedBy(userID string) bool {
	return p.UserID == userID
}

// PostFields are the user-editable fields of a post.
type PostFields struct {
	Title   string
	Slug    string
	Content *string
}

// NewPostFields trims the raw form values. Empty content becomes nil so it is
// stored as NULL.
func NewPostFields(title, slug, content string) PostFields {
	f := PostFields{
		Title: trimSpace(title),
		Slug:  trimSpace(slug),
	}
	if c := trimSpace(content); c != "" {
		f.Content = &c
	}
	return f
}

// User is the authenticated caller as reported by the identity provider.
// It is never persisted by this service.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

// Session is issued by the identity provider on signup or login.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenType    string    `json:"token_type,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         User      `json:"user"`
}
