package handler

import (
	"github.com/gin-gonic/gin"

	"inkpress/src/app/http/dto"
	"inkpress/src/app/http/response"
	"inkpress/src/core/domain"
	"inkpress/src/core/usecase"
)

// PostHandler binds the dashboard post actions. Every response body is the
// action result itself.
type PostHandler struct {
	posts *usecase.PostService
}

func NewPostHandler(posts *usecase.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// List returns the caller's posts.
// GET /v1/dashboard/posts
func (h *PostHandler) List(c *gin.Context) {
	response.Action(c, h.posts.GetUserPosts(c.Request.Context()))
}

// Get returns one of the caller's posts.
// GET /v1/dashboard/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	response.Action(c, h.posts.GetPostByID(c.Request.Context(), c.Param("id")))
}

// Create stores a new draft.
// POST /v1/dashboard/posts
func (h *PostHandler) Create(c *gin.Context) {
	var req dto.SavePostRequest
	if !h.bind(c, &req) {
		return
	}
	response.Action(c, h.posts.CreatePost(c.Request.Context(), req.ToInput()))
}

// Update replaces a post's title, slug and content.
// PUT /v1/dashboard/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	var req dto.SavePostRequest
	if !h.bind(c, &req) {
		return
	}
	response.Action(c, h.posts.UpdatePost(c.Request.Context(), c.Param("id"), req.ToInput()))
}

// Delete removes a post.
// DELETE /v1/dashboard/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	response.Action(c, h.posts.DeletePost(c.Request.Context(), c.Param("id")))
}

// UpdateStatus publishes or unpublishes a post.
// PATCH /v1/dashboard/posts/:id/status
func (h *PostHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if !h.bind(c, &req) {
		return
	}
	response.Action(c, h.posts.UpdatePostStatus(c.Request.Context(), c.Param("id"), req.ToStatus()))
}

// GenerateSlug suggests a slug for a title.
// POST /v1/dashboard/slug
func (h *PostHandler) GenerateSlug(c *gin.Context) {
	var req dto.GenerateSlugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}
	response.Action(c, h.posts.GenerateSlug(req.Title))
}

// bind checks the caller's identity, then decodes the JSON body into req.
func (h *PostHandler) bind(c *gin.Context, req any) bool {
	if res, ok := h.posts.Authorize(c.Request.Context()); !ok {
		response.Action(c, res)
		return false
	}
	if err := c.ShouldBindJSON(req); err != nil {
		invalidBody(c)
		return false
	}
	return true
}

func invalidBody(c *gin.Context) {
	response.Action(c, usecase.ActionResult[any]{
		Error:  "Invalid request body",
		Code:   domain.KindValidation.Code(),
		Status: domain.KindValidation.Status(),
	})
}
