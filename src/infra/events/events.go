// Package events publishes domain events and view invalidations to RabbitMQ.
package events

import (
	"time"

	"inkpress/src/core/ports"
)

const (
	TypePostPublished  = "post.published"
	TypeViewRevalidate = "view.revalidate"
)

// Envelope is the JSON body of every message sent to the exchange.
type Envelope[T any] struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   T         `json:"payload"`
}

type PostPublishedPayload struct {
	PostID string `json:"post_id"`
	Slug   string `json:"slug"`
	Title  string `json:"title"`
	UserID string `json:"user_id"`
}

type ViewRevalidatePayload struct {
	Path string `json:"path"`
}

var now = time.Now

func NewPostPublished(e ports.PostPublished) Envelope[PostPublishedPayload] {
	return Envelope[PostPublishedPayload]{
		Type:      TypePostPublished,
		Timestamp: now().UTC(),
		Payload: PostPublishedPayload{
			PostID: e.PostID,
			Slug:   e.Slug,
			Title:  e.Title,
			UserID: e.UserID,
		},
	}
}

func NewViewRevalidate(path string) Envelope[ViewRevalidatePayload] {
	return Envelope[ViewRevalidatePayload]{
		Type:      TypeViewRevalidate,
		Timestamp: now().UTC(),
		Payload:   ViewRevalidatePayload{Path: path},
	}
}
