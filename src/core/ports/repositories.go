// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"github.com/google/uuid"

	"inkpress/src/core/domain"
)

// Repository is the base interface for all repositories.
// Concrete repositories should embed this and add entity-specific methods.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// PostRepository persists posts.
//
// Lookups that find nothing return a domain NotFound error. Every other store
// failure is returned as (or wraps) a *domain.StoreError carrying the store's
// native error code.
type PostRepository interface {
	Repository

	// Create inserts a post owned by userID and returns the stored row.
	Create(ctx context.Context, userID string, fields domain.PostFields, status domain.PostStatus) (*domain.Post, error)

	// GetOwner returns the owner of a post.
	GetOwner(ctx context.Context, postID uuid.UUID) (string, error)

	// GetForOwner returns the post only when it exists and is owned by userID.
	GetForOwner(ctx context.Context, postID uuid.UUID, userID string) (*domain.Post, error)

	// Update replaces title, slug and content.
	Update(ctx context.Context, postID uuid.UUID, fields domain.PostFields) (*domain.Post, error)

	// UpdateStatus changes only the status column.
	UpdateStatus(ctx context.Context, postID uuid.UUID, status domain.PostStatus) (*domain.Post, error)

	Delete(ctx context.Context, postID uuid.UUID) error

	// ListByOwner returns the owner's posts, most recently updated first.
	ListByOwner(ctx context.Context, userID string) ([]*domain.Post, error)

	// ListPublished returns published posts, newest first.
	ListPublished(ctx context.Context) ([]*domain.Post, error)

	// GetPublishedBySlug returns a published post by slug.
	GetPublishedBySlug(ctx context.Context, slug string) (*domain.Post, error)
}
