package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"inboxzero-be/internal/models"
	"inboxzero-be/internal/services"
	"inboxzero-be/internal/store"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/googleapi"
)

type SyncHandler struct {
	gmail *services.GmailService
	store *store.Store
}

func NewSyncHandler(gmail *services.GmailService, st *store.Store) *SyncHandler {
	return &SyncHandler{gmail: gmail, store: st}
}

// SyncGoogle godoc
// @Summary Replace the working set with Gmail inbox metadata
// @Description Reads message metadata from the caller's inbox using the supplied OAuth access token. On any sync failure the previously loaded records are left untouched.
// @Tags sync
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} models.SyncResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /sync/google [post]
func (h *SyncHandler) SyncGoogle(c *gin.Context) {
	if !h.gmail.Enabled() {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "sync_disabled",
			Message: "Missing GOOGLE_CLIENT_ID / GOOGLE_API_KEY in .env.",
		})
		return
	}

	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "Missing Google access token",
		})
		return
	}

	rows, err := h.gmail.FetchRecords(c.Request.Context(), token)
	if err != nil {
		// Partial results are discarded; the previous record set stays live.
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "sync_failed",
			Message: normalizeError(err),
		})
		return
	}

	h.store.Replace(rows)

	c.JSON(http.StatusOK, models.SyncResponse{
		Loaded:  len(rows),
		Status:  fmt.Sprintf("Connected and loaded %d emails from Gmail.", len(rows)),
		Metrics: h.store.Metrics(),
	})
}

func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}

// normalizeError flattens a sync failure to one human-readable status
// string, unwrapping Google API errors to their message.
func normalizeError(err error) string {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if err == nil {
		return "Unknown error"
	}
	return err.Error()
}
