// internal/handlers/auth.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/catalog-backend/internal/middleware"
	"github.com/javajoker/catalog-backend/internal/services"
	"github.com/javajoker/catalog-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	authResponse, err := h.authService.Register(&req)
	if err != nil {
		var dup *services.DuplicateKeyError
		if errors.As(err, &dup) {
			utils.BadRequestResponse(c, dup.Detail, nil)
			return
		}
		utils.InternalErrorResponse(c, "Unexpected error, check server logs")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"user":  authResponse.User,
		"token": authResponse.Token,
	})
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	authResponse, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.UnauthorizedResponse(c, err.Error())
			return
		}
		utils.InternalErrorResponse(c, "Unexpected error, check server logs")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"user":  authResponse.User,
		"token": authResponse.Token,
	})
}

// GET /auth/check-status
func (h *AuthHandler) CheckStatus(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	authResponse, err := h.authService.CheckStatus(user)
	if err != nil {
		utils.InternalErrorResponse(c, "Unexpected error, check server logs")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"user":  authResponse.User,
		"token": authResponse.Token,
	})
}
