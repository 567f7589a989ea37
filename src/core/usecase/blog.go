package usecase

import (
	"context"
	"log/slog"

	"inkpress/src/core/domain"
	"inkpress/src/core/ports"
)

// PublishedPost is a published post with its content rendered for readers.
type PublishedPost struct {
	Post     *domain.Post
	HTML     string
	Excerpt  string
	Headings []ports.Heading
}

// BlogService serves the public, unauthenticated side of the blog. It never
// returns drafts.
type BlogService struct {
	repo     ports.PostRepository
	renderer ports.MarkdownRenderer
	log      *slog.Logger
}

func NewBlogService(repo ports.PostRepository, renderer ports.MarkdownRenderer, log *slog.Logger) *BlogService {
	return &BlogService{repo: repo, renderer: renderer, log: log}
}

// ListPublished returns every published post, newest first.
func (s *BlogService) ListPublished(ctx context.Context) ([]*PublishedPost, error) {
	posts, err := s.repo.ListPublished(ctx)
	if err != nil {
		return nil, domain.NewDatabaseError("Unable to load posts", err)
	}

	out := make([]*PublishedPost, 0, len(posts))
	for _, p := range posts {
		if !p.IsPublished() {
			continue
		}
		item := &PublishedPost{Post: p}
		if p.Content != nil {
			rendered, err := s.renderer.Render([]byte(*p.Content))
			if err != nil {
				s.log.Warn("render excerpt failed", "post_id", p.ID, "error", err)
			} else {
				item.Excerpt = rendered.Excerpt
			}
		}
		out = append(out, item)
	}
	return out, nil
}

// GetPublished returns a single published post by slug with rendered HTML.
func (s *BlogService) GetPublished(ctx context.Context, slug string) (*PublishedPost, error) {
	if !domain.IsValidSlug(slug) {
		return nil, domain.NewNotFoundError("Post")
	}

	post, err := s.repo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewNotFoundError("Post")
		}
		return nil, domain.NewDatabaseError("Unable to load post", err)
	}
	if !post.IsPublished() {
		return nil, domain.NewNotFoundError("Post")
	}

	out := &PublishedPost{Post: post}
	if post.Content == nil {
		return out, nil
	}

	rendered, err := s.renderer.Render([]byte(*post.Content))
	if err != nil {
		return nil, domain.NewDatabaseError("Unable to render post", err)
	}
	out.HTML = rendered.HTML
	out.Excerpt = rendered.Excerpt
	out.Headings = rendered.Headings
	return out, nil
}
