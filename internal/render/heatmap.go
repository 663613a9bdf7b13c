package render

import (
	"strconv"

	"inboxzero-be/internal/models"
)

// Export canvas layout for the heatmap: 44px cells with a 6px gap,
// hour ticks on even columns only.
const (
	heatmapExportWidth  = 1320
	heatmapExportHeight = 560
	heatmapLeft         = 120
	heatmapTop          = 92
	heatmapCell         = 44
	heatmapGap          = 6
)

// HeatmapExportSize returns the offscreen surface size for a heatmap export.
func HeatmapExportSize() (int, int) {
	return heatmapExportWidth, heatmapExportHeight
}

// DrawHeatmapExport paints the 7x24 activity heatmap onto an export
// surface, using the same quantization buckets as the interactive grid.
func DrawHeatmapExport(s Surface, snap *models.AnalyticsSnapshot) {
	paintBackground(s, "Email Activity Heatmap")

	max := snap.HeatmapMax
	if max < 1 {
		max = 1
	}

	s.SetHexColor("#9cb79a")
	s.SetFontSize(14)
	for h := 0; h < 24; h++ {
		if h%2 != 0 {
			continue
		}
		x := float64(heatmapLeft + h*(heatmapCell+heatmapGap) + 6)
		s.Text(strconv.Itoa(h), x, heatmapTop-12)
	}

	for d := 0; d < 7; d++ {
		s.SetHexColor("#9cb79a")
		s.SetFontSize(14)
		s.Text(dayLabels[d], 56, float64(heatmapTop+d*(heatmapCell+heatmapGap)+28))

		for h := 0; h < 24; h++ {
			level := HeatLevel(snap.HeatmapGrid[d][h], max)
			x := float64(heatmapLeft + h*(heatmapCell+heatmapGap))
			y := float64(heatmapTop + d*(heatmapCell+heatmapGap))

			c := heatLevelColors[level]
			s.SetRGBA(c[0]/255.0, c[1]/255.0, c[2]/255.0, c[3])
			s.FillRoundedRect(x, y, heatmapCell, heatmapCell, 8)
		}
	}
}
