package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsroom-cms/helper"
	"newsroom-cms/models"
	"newsroom-cms/services"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: h}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Email and password required")
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Email and password required")
		return
	}

	if _, err := h.authService.Register(req); err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendMessage(c, http.StatusCreated, "User created successfully")
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		h.Helper.SendUnauthorized(c, "User not found in context")
		return
	}

	user, err := h.authService.GetUserByID(userID.(uint))
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
