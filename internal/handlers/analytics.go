package handlers

import (
	"net/http"
	"strings"

	"inboxzero-be/internal/analytics"
	"inboxzero-be/internal/models"
	"inboxzero-be/internal/render"
	"inboxzero-be/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sahilm/fuzzy"
)

type AnalyticsHandler struct {
	store *store.Store
}

func NewAnalyticsHandler(st *store.Store) *AnalyticsHandler {
	return &AnalyticsHandler{store: st}
}

// AnalyticsResponse bundles everything the dashboard needs for one paint:
// metric tiles, the three view models, and the raw snapshot.
type AnalyticsResponse struct {
	Metrics  models.SummaryMetrics     `json:"metrics"`
	Heatmap  render.HeatmapView        `json:"heatmap"`
	Senders  render.SenderListView     `json:"senders"`
	Types    render.TypeChartView      `json:"types"`
	Snapshot *models.AnalyticsSnapshot `json:"snapshot"`
}

// SendersResponse lists the full sender ranking, optionally filtered.
type SendersResponse struct {
	Senders []models.SenderCount `json:"senders"`
	Query   string               `json:"query"`
	Total   int                  `json:"total"`
}

// GetAnalytics godoc
// @Summary Get the derived analytics for the current record set
// @Description Returns summary metrics, the heatmap, sender ranking, and category distribution views, all computed from the last snapshot.
// @Tags analytics
// @Produce json
// @Success 200 {object} AnalyticsResponse
// @Router /analytics [get]
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	snap := h.store.Snapshot()

	c.JSON(http.StatusOK, AnalyticsResponse{
		Metrics:  h.store.Metrics(),
		Heatmap:  render.BuildHeatmapView(snap),
		Senders:  render.BuildSenderListView(snap),
		Types:    render.BuildTypeChartView(snap),
		Snapshot: snap,
	})
}

// SearchSenders godoc
// @Summary Get the full sender ranking, optionally fuzzy-filtered
// @Tags analytics
// @Produce json
// @Param q query string false "Fuzzy filter on sender address"
// @Success 200 {object} SendersResponse
// @Router /senders [get]
func (h *AnalyticsHandler) SearchSenders(c *gin.Context) {
	ranking := analytics.SenderRanking(h.store.Records())

	q := strings.TrimSpace(c.Query("q"))
	if q != "" {
		targets := make([]string, len(ranking))
		for i, s := range ranking {
			targets[i] = s.Sender
		}

		matches := fuzzy.Find(q, targets)
		filtered := make([]models.SenderCount, 0, len(matches))
		for _, m := range matches {
			filtered = append(filtered, ranking[m.Index])
		}
		ranking = filtered
	}

	c.JSON(http.StatusOK, SendersResponse{
		Senders: ranking,
		Query:   q,
		Total:   len(ranking),
	})
}
