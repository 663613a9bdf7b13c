package render

import (
	"fmt"
	"strconv"

	"inboxzero-be/internal/models"
	"inboxzero-be/internal/utils"
)

const (
	sendersExportWidth  = 1200
	sendersExportHeight = 700
)

// SendersExportSize returns the offscreen surface size for a senders export.
func SendersExportSize() (int, int) {
	return sendersExportWidth, sendersExportHeight
}

// DrawSendersExport paints the top-sender ranking as horizontal bars. Bar
// lengths scale against the highest count in the ranking.
func DrawSendersExport(s Surface, snap *models.AnalyticsSnapshot) {
	paintBackground(s, "Who Wastes Most of Your Time")

	top := snap.TopSenders
	if len(top) == 0 {
		s.SetHexColor("#9cb79a")
		s.SetFontSize(24)
		s.Text("No sender data yet. Upload a CSV first.", 70, 150)
		return
	}

	max := 1
	for _, entry := range top {
		if entry.Count > max {
			max = entry.Count
		}
	}

	const (
		chartLeft = 70.0
		chartTop  = 110.0
		rowH      = 62.0
	)
	chartWidth := float64(sendersExportWidth - 140)

	for i, entry := range top {
		y := chartTop + float64(i)*(rowH+14)
		barW := float64(entry.Count) / float64(max) * (chartWidth - 260)
		if barW < 6 {
			barW = 6
		}

		s.SetHexColor("#9cb79a")
		s.SetFontSize(20)
		s.Text(fmt.Sprintf("%d. %s", i+1, utils.Truncate(entry.Sender, 44)), chartLeft, y+24)

		s.SetRGBA(114/255.0, 214/255.0, 255/255.0, 0.18)
		s.FillRoundedRect(chartLeft, y+30, chartWidth-210, 20, 10)

		s.SetHexColor("#72d6ff")
		s.FillRoundedRect(chartLeft, y+30, barW, 20, 10)

		s.SetHexColor("#efffec")
		s.SetFontSize(20)
		s.Text(strconv.Itoa(entry.Count), chartLeft+chartWidth-190, y+46)
	}
}
