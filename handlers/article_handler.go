package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"newsroom-cms/helper"
	"newsroom-cms/models"
	"newsroom-cms/services"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, h *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: h}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	id, err := h.articleService.CreateArticle(req, userID.(uint))
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendCreated(c, id, "Article created")
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	h.listArticles(c, false)
}

func (h *ArticleHandler) GetPublicArticles(c *gin.Context) {
	h.listArticles(c, true)
}

func (h *ArticleHandler) listArticles(c *gin.Context, isPublic bool) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	// Clamp here too so the echoed pagination matches what was queried.
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 1
	}
	if params.Limit > 100 {
		params.Limit = 100
	}

	articles, total, err := h.articleService.GetArticles(params, isPublic)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	if articles == nil {
		articles = []models.Article{}
	}

	c.JSON(http.StatusOK, models.ArticleListResponse{
		Articles:   articles,
		Pagination: h.Helper.GeneratePaging(params.Page, params.Limit, total),
	})
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, ok := h.articleID(c)
	if !ok {
		return
	}

	article, err := h.articleService.GetArticle(id)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// GetPublicArticle serves a published article and counts the view; drafts
// and archived articles are invisible here.
func (h *ArticleHandler) GetPublicArticle(c *gin.Context) {
	id, ok := h.articleID(c)
	if !ok {
		return
	}

	article, err := h.articleService.GetPublicArticle(id)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, ok := h.articleID(c)
	if !ok {
		return
	}

	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	if err := h.articleService.UpdateArticle(id, req); err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendMessage(c, http.StatusOK, "Article updated")
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, ok := h.articleID(c)
	if !ok {
		return
	}

	if err := h.articleService.DeleteArticle(id); err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendMessage(c, http.StatusOK, "Article deleted")
}

func (h *ArticleHandler) PublishArticle(c *gin.Context) {
	id, ok := h.articleID(c)
	if !ok {
		return
	}

	if err := h.articleService.PublishArticle(id); err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendMessage(c, http.StatusOK, "Article published")
}

func (h *ArticleHandler) GetTrendingArticles(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	articles, err := h.articleService.Trending(limit)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	if articles == nil {
		articles = []models.Article{}
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

func (h *ArticleHandler) GetRelatedArticles(c *gin.Context) {
	excludeID, _ := strconv.ParseUint(c.Query("id"), 10, 32)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "4"))

	var categoryID *uint
	if raw := c.Query("category"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			h.Helper.SendBadRequest(c, "Invalid category ID")
			return
		}
		id := uint(parsed)
		categoryID = &id
	}

	articles, err := h.articleService.Related(uint(excludeID), categoryID, limit)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	if articles == nil {
		articles = []models.Article{}
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

func (h *ArticleHandler) articleID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID")
		return 0, false
	}
	return uint(id), true
}
