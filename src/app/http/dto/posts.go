package dto

import (
	"inkpress/src/core/domain"
	"inkpress/src/core/usecase"
)

// SavePostRequest is the payload for creating or updating a post.
type SavePostRequest struct {
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Content string `json:"content"`
}

func (r SavePostRequest) ToInput() usecase.PostInput {
	return usecase.PostInput{
		Title:   r.Title,
		Slug:    r.Slug,
		Content: r.Content,
	}
}

// UpdateStatusRequest is the payload for PATCH /v1/dashboard/posts/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r UpdateStatusRequest) ToStatus() domain.PostStatus {
	return domain.PostStatus(r.Status)
}

// GenerateSlugRequest is the payload for POST /v1/dashboard/slug.
type GenerateSlugRequest struct {
	Title string `json:"title"`
}
