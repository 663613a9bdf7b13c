package render

import (
	"fmt"
	"math"

	"inboxzero-be/internal/models"
)

const (
	typesExportWidth  = 980
	typesExportHeight = 640

	typesChartSize = 360 // interactive pie, square
)

// TypesExportSize returns the offscreen surface size for a types export.
func TypesExportSize() (int, int) {
	return typesExportWidth, typesExportHeight
}

// TypesChartSize returns the surface size of the interactive pie.
func TypesChartSize() (int, int) {
	return typesChartSize, typesChartSize
}

// drawSectors paints the category pie: sectors start at 12 o'clock and
// proceed clockwise in descending-count order, then the center hole is
// punched out with the two-line caption.
func drawSectors(s Surface, items []models.CategoryCount, cx, cy, radius, hole float64, caption sectorCaption) {
	total := 0
	for _, item := range items {
		total += item.Count
	}
	if total == 0 {
		return
	}

	start := -math.Pi / 2
	for i, item := range items {
		end := start + float64(item.Count)/float64(total)*2*math.Pi
		s.SetHexColor(Color(i))
		s.FillSector(cx, cy, radius, start, end)
		start = end
	}

	s.SetHexColor("#0d130d")
	s.FillCircle(cx, cy, hole)

	s.SetHexColor("#72d6ff")
	s.SetFontSize(caption.mainSize)
	s.TextCentered("Email", cx, cy+caption.mainDY)
	s.SetHexColor("#9cb79a")
	s.SetFontSize(caption.subSize)
	s.TextCentered("Types", cx, cy+caption.subDY)
}

// sectorCaption positions the two caption lines inside the center hole.
type sectorCaption struct {
	mainSize, mainDY float64
	subSize, subDY   float64
}

// DrawTypesChart paints the interactive category pie at widget size.
func DrawTypesChart(s Surface, snap *models.AnalyticsSnapshot) {
	w, h := s.Size()
	cx, cy := float64(w)/2, float64(h)/2

	if len(snap.TypeItems) == 0 {
		s.SetHexColor("#9cb79a")
		s.SetFontSize(16)
		s.TextCentered("No data yet", cx, cy)
		return
	}

	drawSectors(s, snap.TypeItems, cx, cy, 125, 52, sectorCaption{mainSize: 16, mainDY: -4, subSize: 13, subDY: 16})
}

// DrawTypesExport paints the category pie with its legend onto an export
// surface. Legend rows carry the palette swatch and the rounded percent,
// the same values the interactive legend shows.
func DrawTypesExport(s Surface, snap *models.AnalyticsSnapshot) {
	paintBackground(s, "Email Types")

	items := snap.TypeItems
	if len(items) == 0 {
		s.SetHexColor("#9cb79a")
		s.SetFontSize(24)
		s.Text("No type data yet. Upload a CSV first.", 70, 150)
		return
	}

	total := 0
	for _, item := range items {
		total += item.Count
	}

	for i, item := range items {
		legendY := float64(170 + i*56)

		s.SetHexColor(Color(i))
		s.FillRoundedRect(530, legendY, 24, 24, 8)

		s.SetHexColor("#efffec")
		s.SetFontSize(20)
		s.Text(item.Category, 564, legendY+20)

		s.SetHexColor("#9cb79a")
		s.Text(fmt.Sprintf("%d%%", Percent(item.Count, total)), 860, legendY+20)
	}

	drawSectors(s, items, 280, 340, 180, 74, sectorCaption{mainSize: 26, mainDY: -8, subSize: 19, subDY: 20})
}
