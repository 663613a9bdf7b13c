// Package export re-paints the last computed aggregates onto standalone
// offscreen surfaces sized for download or print. It reads only snapshot
// values, never raw records, so the exported image always matches what the
// dashboard showed when the export started.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"inboxzero-be/internal/models"
	"inboxzero-be/internal/render"
)

const appName = "inboxzero"

// ErrUnknownChart is returned for chart names outside heatmap/senders/types.
var ErrUnknownChart = errors.New("unknown chart")

var titles = map[string]string{
	"heatmap": "Email Activity Heatmap",
	"senders": "Who Wastes Most of Your Time",
	"types":   "Email Types",
}

// Title returns the export header for a chart name.
func Title(chart string) string {
	if t, ok := titles[chart]; ok {
		return t
	}
	return "Chart"
}

// Filename builds the download name, e.g. inboxzero-heatmap-2026-08-30.png.
func Filename(chart string, now time.Time) string {
	return fmt.Sprintf("%s-%s-%s.png", appName, chart, now.Format("2006-01-02"))
}

// PNG paints the named chart from the snapshot and returns the encoded
// image bytes.
func PNG(chart string, snap *models.AnalyticsSnapshot) ([]byte, error) {
	surface, err := paint(chart, snap)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := surface.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode %s export: %w", chart, err)
	}
	return buf.Bytes(), nil
}

// TypesChartPNG paints the interactive-size category pie for inline display.
func TypesChartPNG(snap *models.AnalyticsSnapshot) ([]byte, error) {
	surface := render.NewSurface(render.TypesChartSize())
	render.DrawTypesChart(surface, snap)

	var buf bytes.Buffer
	if err := surface.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode types chart: %w", err)
	}
	return buf.Bytes(), nil
}

func paint(chart string, snap *models.AnalyticsSnapshot) (render.Surface, error) {
	switch chart {
	case "heatmap":
		surface := render.NewSurface(render.HeatmapExportSize())
		render.DrawHeatmapExport(surface, snap)
		return surface, nil
	case "senders":
		surface := render.NewSurface(render.SendersExportSize())
		render.DrawSendersExport(surface, snap)
		return surface, nil
	case "types":
		surface := render.NewSurface(render.TypesExportSize())
		render.DrawTypesExport(surface, snap)
		return surface, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChart, chart)
	}
}
