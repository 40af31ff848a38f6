package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"newsroom-cms/helper"
	"newsroom-cms/models"
	"newsroom-cms/services"
)

type MediaHandler struct {
	mediaService services.MediaService
	Helper       *helper.HTTPHelper
}

func NewMediaHandler(mediaService services.MediaService, h *helper.HTTPHelper) *MediaHandler {
	return &MediaHandler{mediaService: mediaService, Helper: h}
}

func (h *MediaHandler) GetMedia(c *gin.Context) {
	items, err := h.mediaService.GetMedia()
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	if items == nil {
		items = []models.MediaItem{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *MediaHandler) RegisterMedia(c *gin.Context) {
	var req models.CreateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	item, err := h.mediaService.RegisterMedia(req)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	id, ok := h.mediaID(c)
	if !ok {
		return
	}

	if err := h.mediaService.DeleteMedia(id); err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendMessage(c, http.StatusOK, "Media deleted")
}

func (h *MediaHandler) mediaID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid media ID")
		return 0, false
	}
	return uint(id), true
}
