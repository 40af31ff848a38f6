package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsroom-cms/helper"
	"newsroom-cms/models"
	"newsroom-cms/services"
)

type NewsletterHandler struct {
	newsletterService services.NewsletterService
	Helper            *helper.HTTPHelper
}

func NewNewsletterHandler(newsletterService services.NewsletterService, h *helper.HTTPHelper) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService, Helper: h}
}

func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	if err := h.Helper.ValidateVar(req.Email, "required,email"); err != nil {
		h.Helper.SendBadRequest(c, "Valid email is required")
		return
	}

	created, err := h.newsletterService.Subscribe(req.Email)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "Email already subscribed", "subscribed": true})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Successfully subscribed to newsletter", "subscribed": true})
}

func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var req models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	if req.Email == "" {
		h.Helper.SendBadRequest(c, "Email is required")
		return
	}

	if err := h.newsletterService.Unsubscribe(req.Email); err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendMessage(c, http.StatusOK, "Successfully unsubscribed from newsletter")
}

func (h *NewsletterHandler) GetSubscribers(c *gin.Context) {
	subscribers, err := h.newsletterService.GetSubscribers()
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	if subscribers == nil {
		subscribers = []models.NewsletterSubscriber{}
	}
	c.JSON(http.StatusOK, subscribers)
}
