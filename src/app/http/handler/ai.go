package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"inkpress/src/app/http/dto"
	"inkpress/src/app/http/response"
	"inkpress/src/core/domain"
	"inkpress/src/core/usecase"
)

// AIHandler serves the editor's AI endpoints. Errors use the flat
// {"error", "code"} body.
type AIHandler struct {
	ai  *usecase.AIService
	log *slog.Logger
}

func NewAIHandler(ai *usecase.AIService, log *slog.Logger) *AIHandler {
	return &AIHandler{ai: ai, log: log}
}

// Enhance refines a draft.
// POST /posts/enhance
func (h *AIHandler) Enhance(c *gin.Context) {
	content, ok := h.bindContent(c)
	if !ok {
		return
	}
	res, err := h.ai.Enhance(c.Request.Context(), content)
	if err != nil {
		_ = c.Error(err)
		response.Flat(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Summarize produces a short summary of a post.
// POST /posts/summarize
func (h *AIHandler) Summarize(c *gin.Context) {
	content, ok := h.bindContent(c)
	if !ok {
		return
	}
	res, err := h.ai.Summarize(c.Request.Context(), content)
	if err != nil {
		_ = c.Error(err)
		response.Flat(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *AIHandler) bindContent(c *gin.Context) (string, bool) {
	if err := h.ai.Authorize(c.Request.Context()); err != nil {
		response.Flat(c, h.log, err)
		return "", false
	}

	var req dto.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Flat(c, h.log, domain.NewValidationError(domain.FieldContent, "Invalid request body"))
		return "", false
	}
	return req.Content, true
}
