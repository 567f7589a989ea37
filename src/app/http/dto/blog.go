package dto

import (
	"time"

	"inkpress/src/core/ports"
	"inkpress/src/core/usecase"
)

// BlogPostResponse is a published post as listed on the blog index.
type BlogPostResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   string    `json:"excerpt,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BlogPageResponse is a single published post with rendered content.
type BlogPageResponse struct {
	BlogPostResponse
	Content  string          `json:"content,omitempty"`
	HTML     string          `json:"html,omitempty"`
	Headings []ports.Heading `json:"headings,omitempty"`
}

func NewBlogPostResponse(p *usecase.PublishedPost) BlogPostResponse {
	return BlogPostResponse{
		ID:        p.Post.ID.String(),
		Title:     p.Post.Title,
		Slug:      p.Post.Slug,
		Excerpt:   p.Excerpt,
		CreatedAt: p.Post.CreatedAt,
		UpdatedAt: p.Post.UpdatedAt,
	}
}

func NewBlogPageResponse(p *usecase.PublishedPost) BlogPageResponse {
	out := BlogPageResponse{
		BlogPostResponse: NewBlogPostResponse(p),
		HTML:             p.HTML,
		Headings:         p.Headings,
	}
	if p.Post.Content != nil {
		out.Content = *p.Post.Content
	}
	return out
}
