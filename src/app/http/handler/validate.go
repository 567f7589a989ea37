package handler

import (
	"github.com/gin-gonic/gin"

	"inkpress/src/app/http/dto"
	"inkpress/src/app/http/response"
	"inkpress/src/app/middleware"
	"inkpress/src/core/domain"
)

// ValidateHandler exposes the form validator for live feedback. It always
// answers 200; the verdict is in the body.
type ValidateHandler struct{}

func NewValidateHandler() *ValidateHandler {
	return &ValidateHandler{}
}

// Validate POST /v1/validate
func (h *ValidateHandler) Validate(c *gin.Context) {
	var req dto.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", middleware.GetRequestID(c))
		return
	}

	if req.Field != "" {
		response.OK(c, domain.ValidateField(req.Field, req.Value))
		return
	}
	response.OK(c, domain.ValidatePostInputs(req.Title, req.Slug, req.Content))
}
