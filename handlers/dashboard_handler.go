package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsroom-cms/helper"
	"newsroom-cms/models"
	"newsroom-cms/services"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
	Helper           *helper.HTTPHelper
}

func NewDashboardHandler(dashboardService services.DashboardService, h *helper.HTTPHelper) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, Helper: h}
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats()
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	if stats.TrendingArticles == nil {
		stats.TrendingArticles = []models.Article{}
	}
	if stats.RecentArticles == nil {
		stats.RecentArticles = []models.Article{}
	}
	c.JSON(http.StatusOK, stats)
}
