// Package render turns analytics snapshots into the shapes the dashboard
// shows: JSON view models for the interactive widgets and painted surfaces
// for exports. Both sides share the same quantization, ordering, and color
// rules so a download always matches the screen.
package render

import "math"

// Palette is the fixed chart palette, cycled by index across the pie, its
// legend, and the export counterpart.
var Palette = []string{"#72d6ff", "#61e3ff", "#96f2ff", "#b8e6ff", "#7dd6ff", "#6ef9ff"}

// Color returns the palette color for a sector index.
func Color(i int) string {
	return Palette[i%len(Palette)]
}

var dayLabels = [7]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}
var dayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// HeatLevel quantizes a heatmap cell into one of 7 discrete intensity
// buckets. Zero cells carry no level at all; any positive cell lands in
// [1,7]. This is a bucket scale, not a continuous gradient.
func HeatLevel(value, max int) int {
	if value <= 0 {
		return 0
	}
	if max < 1 {
		max = 1
	}
	normalized := float64(value) / float64(max)
	if normalized > 1 {
		normalized = 1
	}
	level := int(math.Ceil(normalized * 7))
	if level < 1 {
		level = 1
	}
	if level > 7 {
		level = 7
	}
	return level
}

// heatLevelColors maps a quantization level (0 = blank) to its export
// fill, RGBA on a 0-255/0-1 scale.
var heatLevelColors = [8][4]float64{
	{8, 12, 18, 0.90},
	{9, 30, 56, 0.95},
	{13, 52, 86, 0.95},
	{18, 78, 120, 0.96},
	{30, 100, 145, 0.96},
	{38, 124, 170, 0.98},
	{52, 152, 198, 0.98},
	{70, 186, 232, 1.0},
}

// Percent rounds a count's share of total to whole percent. Shares are
// rounded independently, so a legend may not sum to exactly 100.
func Percent(count, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
