package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"inkpress/src/app/http/dto"
	"inkpress/src/app/http/response"
	"inkpress/src/app/middleware"
	"inkpress/src/core/usecase"
)

// BlogHandler serves published posts to anonymous readers.
type BlogHandler struct {
	blog *usecase.BlogService
	log  *slog.Logger
}

func NewBlogHandler(blog *usecase.BlogService, log *slog.Logger) *BlogHandler {
	return &BlogHandler{blog: blog, log: log}
}

// List returns published posts, newest first.
// GET /blog
func (h *BlogHandler) List(c *gin.Context) {
	posts, err := h.blog.ListPublished(c.Request.Context())
	if err != nil {
		response.FromError(c, h.log, err, middleware.GetRequestID(c))
		return
	}

	out := make([]dto.BlogPostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, dto.NewBlogPostResponse(p))
	}
	response.OK(c, out)
}

// Get returns a published post with rendered HTML.
// GET /blog/:slug
func (h *BlogHandler) Get(c *gin.Context) {
	post, err := h.blog.GetPublished(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.FromError(c, h.log, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.NewBlogPageResponse(post))
}
