package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"newsroom-cms/helper"
	"newsroom-cms/models"
	"newsroom-cms/services"
)

type CategoryHandler struct {
	categoryService services.CategoryService
	Helper          *helper.HTTPHelper
}

func NewCategoryHandler(categoryService services.CategoryService, h *helper.HTTPHelper) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, Helper: h}
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetCategories()
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	if categories == nil {
		categories = []models.Category{}
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := h.categoryID(c)
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategory(id)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Name is required")
		return
	}

	id, err := h.categoryService.CreateCategory(req)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendCreated(c, id, "Category created")
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := h.categoryID(c)
	if !ok {
		return
	}

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Name is required")
		return
	}

	if err := h.categoryService.UpdateCategory(id, req); err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendMessage(c, http.StatusOK, "Category updated")
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := h.categoryID(c)
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategory(id); err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendMessage(c, http.StatusOK, "Category deleted")
}

func (h *CategoryHandler) categoryID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid category ID")
		return 0, false
	}
	return uint(id), true
}
