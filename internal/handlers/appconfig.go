package handlers

import (
	"net/http"

	"inboxzero-be/config"
	"inboxzero-be/internal/models"
	"inboxzero-be/internal/services"

	"github.com/gin-gonic/gin"
)

type ConfigHandler struct {
	cfg   *config.Config
	gmail *services.GmailService
}

func NewConfigHandler(cfg *config.Config, gmail *services.GmailService) *ConfigHandler {
	return &ConfigHandler{cfg: cfg, gmail: gmail}
}

// GetConfig godoc
// @Summary Get the frontend runtime configuration
// @Description Supplies the Google credentials the dashboard needs before offering inbox sync. When either credential is absent, syncEnabled is false and the connect button stays disabled.
// @Tags config
// @Produce json
// @Success 200 {object} models.AppConfigResponse
// @Router /config [get]
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, models.AppConfigResponse{
		GoogleClientID: h.cfg.GoogleClientID,
		GoogleAPIKey:   h.cfg.GoogleAPIKey,
		SyncEnabled:    h.gmail.Enabled(),
	})
}
