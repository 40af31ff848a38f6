package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsroom-cms/helper"
	"newsroom-cms/models"
	"newsroom-cms/services"
)

type SettingHandler struct {
	settingService services.SettingService
	Helper         *helper.HTTPHelper
}

func NewSettingHandler(settingService services.SettingService, h *helper.HTTPHelper) *SettingHandler {
	return &SettingHandler{settingService: settingService, Helper: h}
}

func (h *SettingHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingService.GetSettings()
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *SettingHandler) GetPublicSettings(c *gin.Context) {
	settings, err := h.settingService.GetPublicSettings()
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *SettingHandler) UpdateSettings(c *gin.Context) {
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}
	if len(req) == 0 {
		h.Helper.SendBadRequest(c, "No settings provided")
		return
	}

	if err := h.settingService.UpdateSettings(req); err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendMessage(c, http.StatusOK, "Settings updated successfully")
}

func (h *SettingHandler) GetHomepage(c *gin.Context) {
	homepage, err := h.settingService.GetHomepageSettings()
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	c.JSON(http.StatusOK, homepage)
}

func (h *SettingHandler) UpdateHomepage(c *gin.Context) {
	var req models.HomepageSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	if err := h.settingService.UpdateHomepageSettings(req); err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendMessage(c, http.StatusOK, "Homepage settings updated")
}
