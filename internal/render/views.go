package render

import (
	"fmt"

	"inboxzero-be/internal/models"
)

// HeatmapCell carries one cell's count and its quantization level.
type HeatmapCell struct {
	Value int    `json:"value"`
	Level int    `json:"level"` // 0 = blank, 1-7 = intensity bucket
	Tip   string `json:"tip"`
}

type HeatmapRow struct {
	Day   string        `json:"day"`
	Cells []HeatmapCell `json:"cells"`
}

// HeatmapView is the interactive heatmap: 7 rows by 24 columns plus the
// legend chip sequence (blank swatch, "0", the 7 buckets, "11+", top swatch).
type HeatmapView struct {
	Hours  []int        `json:"hours"`
	Rows   []HeatmapRow `json:"rows"`
	Legend []string     `json:"legend"`
}

type SenderEntry struct {
	Rank  int    `json:"rank"`
	Label string `json:"label"` // "{rank}. {sender}"
	Count int    `json:"count"`
}

// SenderListView is the ranked sender list, or a single placeholder entry
// when the working set is empty.
type SenderListView struct {
	Entries     []SenderEntry `json:"entries"`
	Placeholder string        `json:"placeholder,omitempty"`
}

type TypeItemView struct {
	Label   string `json:"label"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
	Color   string `json:"color"`
}

// TypeChartView describes the category pie: sectors in legend order, the
// two-line center caption, or a placeholder when there is no data.
type TypeChartView struct {
	Items       []TypeItemView `json:"items"`
	Center      [2]string      `json:"center"`
	Placeholder string         `json:"placeholder,omitempty"`
}

// BuildHeatmapView builds the interactive heatmap from a snapshot.
func BuildHeatmapView(snap *models.AnalyticsSnapshot) HeatmapView {
	view := HeatmapView{
		Hours:  make([]int, 24),
		Rows:   make([]HeatmapRow, 0, 7),
		Legend: heatmapLegend(),
	}
	for hour := range view.Hours {
		view.Hours[hour] = hour
	}

	for day := 0; day < 7; day++ {
		row := HeatmapRow{Day: dayLabels[day], Cells: make([]HeatmapCell, 24)}
		for hour := 0; hour < 24; hour++ {
			value := snap.HeatmapGrid[day][hour]
			row.Cells[hour] = HeatmapCell{
				Value: value,
				Level: HeatLevel(value, snap.HeatmapMax),
				Tip:   fmt.Sprintf("%s %02d:00 • %d", dayNames[day], hour, value),
			}
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

func heatmapLegend() []string {
	chips := []string{"legend-chip", "0"}
	for i := 1; i <= 7; i++ {
		chips = append(chips, fmt.Sprintf("legend-chip level-%d", i))
	}
	return append(chips, "11+", "legend-chip level-7")
}

// BuildSenderListView builds the ranked sender list from a snapshot.
func BuildSenderListView(snap *models.AnalyticsSnapshot) SenderListView {
	if len(snap.TopSenders) == 0 {
		return SenderListView{Placeholder: "Upload data to see sender ranking."}
	}

	view := SenderListView{Entries: make([]SenderEntry, 0, len(snap.TopSenders))}
	for i, s := range snap.TopSenders {
		view.Entries = append(view.Entries, SenderEntry{
			Rank:  i + 1,
			Label: fmt.Sprintf("%d. %s", i+1, s.Sender),
			Count: s.Count,
		})
	}
	return view
}

// BuildTypeChartView builds the category pie view from a snapshot.
func BuildTypeChartView(snap *models.AnalyticsSnapshot) TypeChartView {
	if len(snap.TypeItems) == 0 {
		return TypeChartView{Center: [2]string{"Email", "Types"}, Placeholder: "No data yet"}
	}

	total := 0
	for _, item := range snap.TypeItems {
		total += item.Count
	}

	view := TypeChartView{Center: [2]string{"Email", "Types"}}
	for i, item := range snap.TypeItems {
		view.Items = append(view.Items, TypeItemView{
			Label:   item.Category,
			Count:   item.Count,
			Percent: Percent(item.Count, total),
			Color:   Color(i),
		})
	}
	return view
}
