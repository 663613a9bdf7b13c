package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"inboxzero-be/internal/export"
	"inboxzero-be/internal/models"
	"inboxzero-be/internal/store"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	store *store.Store
}

func NewExportHandler(st *store.Store) *ExportHandler {
	return &ExportHandler{store: st}
}

// ExportPNG godoc
// @Summary Download a chart as a PNG image
// @Description Renders the named chart from the last computed snapshot onto an export-sized surface. The download name follows inboxzero-{chart}-{date}.png.
// @Tags export
// @Produce png
// @Param chart path string true "Chart name" Enums(heatmap, senders, types)
// @Success 200 {file} file
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /export/{chart} [get]
func (h *ExportHandler) ExportPNG(c *gin.Context) {
	chart := c.Param("chart")

	png, err := export.PNG(chart, h.store.Snapshot())
	if err != nil {
		h.exportError(c, chart, err)
		return
	}

	filename := export.Filename(chart, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "image/png", png)
}

// ExportPrint godoc
// @Summary Open a chart as an auto-printing document
// @Description Returns a standalone HTML page embedding the chart image; the page invokes the print dialog on load.
// @Tags export
// @Produce html
// @Param chart path string true "Chart name" Enums(heatmap, senders, types)
// @Success 200 {string} string
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /export/{chart}/print [get]
func (h *ExportHandler) ExportPrint(c *gin.Context) {
	chart := c.Param("chart")

	doc, err := export.PrintDocument(chart, h.store.Snapshot())
	if err != nil {
		h.exportError(c, chart, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", doc)
}

// TypesChart godoc
// @Summary Get the category pie at widget size
// @Tags analytics
// @Produce png
// @Success 200 {file} file
// @Failure 500 {object} models.ErrorResponse
// @Router /charts/types [get]
func (h *ExportHandler) TypesChart(c *gin.Context) {
	png, err := export.TypesChartPNG(h.store.Snapshot())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "render_failed",
			Message: err.Error(),
		})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

func (h *ExportHandler) exportError(c *gin.Context, chart string, err error) {
	if errors.Is(err, export.ErrUnknownChart) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "unknown_chart",
			Message: "Chart must be one of heatmap, senders, types",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "export_failed",
		Message: "Failed to export " + chart + ": " + err.Error(),
	})
}
