package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"inkpress/src/core/domain"
	"inkpress/src/core/ports"
)

const slugInUseMessage = "This URL slug is already in use. Please choose a different one."

// Paths whose cached renderings are invalidated after mutations.
const (
	pathDashboard = "/dashboard"
	pathBlog      = "/blog"
)

func blogPath(slug string) string {
	return pathBlog + "/" + slug
}

// PostInput carries the raw form values of a post.
type PostInput struct {
	Title   string
	Slug    string
	Content string
}

// PostService owns the post lifecycle: create, update, delete, publish toggle
// and the owner's reads. Identity and ownership are checked on every call.
type PostService struct {
	repo   ports.PostRepository
	auth   ports.Authenticator
	views  ports.ViewInvalidator
	events ports.EventPublisher
	log    *slog.Logger
}

func NewPostService(
	repo ports.PostRepository,
	auth ports.Authenticator,
	views ports.ViewInvalidator,
	events ports.EventPublisher,
	log *slog.Logger,
) *PostService {
	return &PostService{repo: repo, auth: auth, views: views, events: events, log: log}
}

// CreatePost validates the input and stores a new draft owned by the caller.
func (s *PostService) CreatePost(ctx context.Context, in PostInput) ActionResult[*domain.Post] {
	user, derr := s.requireUser(ctx)
	if derr != nil {
		return failWith[*domain.Post](domain.HandleError(s.log, derr))
	}

	if res := domain.ValidatePostInputs(in.Title, in.Slug, in.Content); !res.IsValid {
		return failFields[*domain.Post](res.Errors)
	}

	post, err := s.repo.Create(ctx, user.ID, domain.NewPostFields(in.Title, in.Slug, in.Content), domain.StatusDraft)
	if err != nil {
		if domain.IsUniqueViolationOn(err, domain.FieldSlug) {
			return failFields[*domain.Post](map[string]string{domain.FieldSlug: slugInUseMessage})
		}
		return storeFailure[*domain.Post](s.log, "Failed to create post", err)
	}

	s.revalidate(ctx, pathDashboard)

	res := succeed(post)
	res.Status = http.StatusCreated
	return res
}

// UpdatePost replaces the title, slug and content of a post the caller owns.
func (s *PostService) UpdatePost(ctx context.Context, postID string, in PostInput) ActionResult[*domain.Post] {
	user, derr := s.requireUser(ctx)
	if derr != nil {
		return failWith[*domain.Post](domain.HandleError(s.log, derr))
	}

	id, derr := s.authorize(ctx, postID, user.ID, "edit")
	if derr != nil {
		return failWith[*domain.Post](domain.HandleError(s.log, derr))
	}

	if res := domain.ValidatePostInputs(in.Title, in.Slug, in.Content); !res.IsValid {
		return failFields[*domain.Post](res.Errors)
	}

	post, err := s.repo.Update(ctx, id, domain.NewPostFields(in.Title, in.Slug, in.Content))
	if err != nil {
		if domain.IsUniqueViolationOn(err, domain.FieldSlug) {
			return failFields[*domain.Post](map[string]string{domain.FieldSlug: slugInUseMessage})
		}
		return writeFailure[*domain.Post](s.log, "Failed to update post", err)
	}

	s.revalidate(ctx, pathDashboard, blogPath(post.Slug))
	return succeed(post)
}

// DeletePost removes a post the caller owns.
func (s *PostService) DeletePost(ctx context.Context, postID string) ActionResult[any] {
	user, derr := s.requireUser(ctx)
	if derr != nil {
		return failWith[any](domain.HandleError(s.log, derr))
	}

	id, derr := s.authorize(ctx, postID, user.ID, "delete")
	if derr != nil {
		return failWith[any](domain.HandleError(s.log, derr))
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return writeFailure[any](s.log, "Failed to delete post", err)
	}

	s.revalidate(ctx, pathDashboard)
	return succeed[any](nil)
}

// UpdatePostStatus publishes or unpublishes a post the caller owns. Setting
// the status to published also emits a post.published event.
func (s *PostService) UpdatePostStatus(ctx context.Context, postID string, status domain.PostStatus) ActionResult[*domain.Post] {
	user, derr := s.requireUser(ctx)
	if derr != nil {
		return failWith[*domain.Post](domain.HandleError(s.log, derr))
	}

	id, derr := s.authorize(ctx, postID, user.ID, "modify")
	if derr != nil {
		return failWith[*domain.Post](domain.HandleError(s.log, derr))
	}

	if !status.Valid() {
		return failFields[*domain.Post](map[string]string{
			domain.FieldStatus: "Status must be draft or published",
		})
	}

	post, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return writeFailure[*domain.Post](s.log, "Failed to update post status", err)
	}

	paths := []string{pathDashboard, pathBlog}
	if post.Slug != "" {
		paths = append(paths, blogPath(post.Slug))
	}
	s.revalidate(ctx, paths...)

	if post.IsPublished() {
		s.announce(ctx, post)
	}
	return succeed(post)
}

// GetUserPosts lists the caller's posts, most recently updated first.
func (s *PostService) GetUserPosts(ctx context.Context) ActionResult[[]*domain.Post] {
	user, derr := s.requireUser(ctx)
	if derr != nil {
		return failWith[[]*domain.Post](domain.HandleError(s.log, derr))
	}

	posts, err := s.repo.ListByOwner(ctx, user.ID)
	if err != nil {
		return storeFailure[[]*domain.Post](s.log, "Failed to fetch posts", err)
	}
	if posts == nil {
		posts = []*domain.Post{}
	}
	return succeed(posts)
}

// GetPostByID returns one of the caller's posts. A post owned by someone else
// is reported exactly like a missing one.
func (s *PostService) GetPostByID(ctx context.Context, postID string) ActionResult[*domain.Post] {
	user, derr := s.requireUser(ctx)
	if derr != nil {
		return failWith[*domain.Post](domain.HandleError(s.log, derr))
	}

	id, err := uuid.Parse(postID)
	if err != nil {
		return failWith[*domain.Post](domain.HandleError(s.log, domain.NewNotFoundError("Post")))
	}

	post, err := s.repo.GetForOwner(ctx, id, user.ID)
	if err != nil {
		if domain.IsNotFound(err) {
			return failWith[*domain.Post](domain.HandleError(s.log, domain.NewNotFoundError("Post")))
		}
		return storeFailure[*domain.Post](s.log, "Failed to fetch post", err)
	}
	return succeed(post)
}

// GenerateSlug derives a slug from a title for the editor.
func (s *PostService) GenerateSlug(title string) ActionResult[string] {
	if strings.TrimSpace(title) == "" {
		return failWith[string](domain.HandleError(s.log, domain.NewValidationError(domain.FieldTitle, "Title is required")))
	}
	return succeed(domain.GenerateSlugFromTitle(title))
}

// Authorize returns the failure every action gives an anonymous caller, or
// ok when the request carries a valid identity.
func (s *PostService) Authorize(ctx context.Context) (ActionResult[any], bool) {
	if _, derr := s.requireUser(ctx); derr != nil {
		return failWith[any](domain.HandleError(s.log, derr)), false
	}
	return ActionResult[any]{}, true
}

// requireUser resolves the caller from the request context.
func (s *PostService) requireUser(ctx context.Context) (*domain.User, *domain.DomainError) {
	user, err := s.auth.CurrentUser(ctx)
	if err != nil || user == nil {
		if err != nil && !domain.IsUnauthorized(err) {
			s.log.Warn("identity lookup failed", "error", err)
		}
		return nil, domain.NewUnauthorizedError("Authentication required")
	}
	return user, nil
}

// authorize checks that postID names an existing post owned by userID.
func (s *PostService) authorize(ctx context.Context, postID, userID, action string) (uuid.UUID, *domain.DomainError) {
	id, err := uuid.Parse(postID)
	if err != nil {
		return uuid.Nil, domain.NewNotFoundError("Post")
	}

	owner, err := s.repo.GetOwner(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return uuid.Nil, domain.NewNotFoundError("Post")
		}
		s.log.Error("post ownership lookup failed", "post_id", postID, "error", err)
		return uuid.Nil, domain.NewDatabaseError("Failed to "+action+" post", err)
	}

	if owner != userID {
		return uuid.Nil, domain.NewForbiddenError("Unauthorized to " + action + " this post")
	}
	return id, nil
}

func (s *PostService) revalidate(ctx context.Context, paths ...string) {
	for _, p := range paths {
		if err := s.views.Revalidate(ctx, p); err != nil {
			s.log.Warn("view revalidation failed", "path", p, "error", err)
		}
	}
}

func (s *PostService) announce(ctx context.Context, post *domain.Post) {
	err := s.events.PublishPostPublished(ctx, ports.PostPublished{
		PostID: post.ID.String(),
		Slug:   post.Slug,
		Title:  post.Title,
		UserID: post.UserID,
	})
	if err != nil {
		s.log.Warn("publish post.published failed", "post_id", post.ID, "error", err)
	}
}

// storeFailure logs a store error and reports it as a Database error.
func storeFailure[T any](log *slog.Logger, message string, err error) ActionResult[T] {
	log.Error(message, "error", err)
	return failWith[T](domain.HandleError(log, domain.NewDatabaseError(message, err)))
}

// writeFailure reports a post that disappeared after the ownership check as
// not found, and anything else as a store failure.
func writeFailure[T any](log *slog.Logger, message string, err error) ActionResult[T] {
	if domain.IsNotFound(err) {
		return failWith[T](domain.HandleError(log, domain.NewNotFoundError("Post")))
	}
	return storeFailure[T](log, message, err)
}
