package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"newsroom-cms/helper"
	"newsroom-cms/models"
	"newsroom-cms/services"
)

type CommentHandler struct {
	commentService services.CommentService
	Helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService, h *helper.HTTPHelper) *CommentHandler {
	return &CommentHandler{commentService: commentService, Helper: h}
}

func (h *CommentHandler) GetComments(c *gin.Context) {
	status := models.CommentStatus(c.Query("status"))

	comments, err := h.commentService.GetComments(status)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}
	c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) ApproveComment(c *gin.Context) {
	id, ok := h.commentID(c)
	if !ok {
		return
	}

	if err := h.commentService.ApproveComment(id); err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendMessage(c, http.StatusOK, "Comment approved")
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := h.commentID(c)
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(id); err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendMessage(c, http.StatusOK, "Comment deleted")
}

// ToggleComments flips the sitewide switch; the value persists in the
// settings store.
func (h *CommentHandler) ToggleComments(c *gin.Context) {
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	if err := h.commentService.ToggleComments(req.Enabled); err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comments toggled", "enabled": req.Enabled})
}

func (h *CommentHandler) commentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid comment ID")
		return 0, false
	}
	return uint(id), true
}
