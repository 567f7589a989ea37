package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkpress/src/app/http/dto"
	"inkpress/src/app/http/response"
	"inkpress/src/core/usecase"
)

// AuthHandler forwards signup and login to the identity provider.
type AuthHandler struct {
	auth *usecase.AuthService
}

func NewAuthHandler(auth *usecase.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// SignUp POST /auth/signup
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}
	res := h.auth.SignUp(c.Request.Context(), req.Email, req.Password)
	if res.Success {
		res.Status = http.StatusCreated
	}
	response.Action(c, res)
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}
	response.Action(c, h.auth.SignIn(c.Request.Context(), req.Email, req.Password))
}
