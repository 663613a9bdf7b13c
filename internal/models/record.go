package models

import (
	"time"
)

// EmailRecord is one normalized email. The category is assigned once at
// parse time so every consumer sees the same label.
type EmailRecord struct {
	Date     time.Time `json:"date"`
	From     string    `json:"from"`
	Subject  string    `json:"subject"`
	Category string    `json:"category"`
}

// SenderCount - one sender and how many emails it sent
type SenderCount struct {
	Sender string `json:"sender"`
	Count  int    `json:"count"`
}

// CategoryCount - one category label and its record count
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// AnalyticsSnapshot holds the derived views for the current record set.
// It is rebuilt in full whenever the record set is replaced and treated as
// immutable afterwards: exports always read the last snapshot, never the
// raw records, so a download matches what is on screen.
type AnalyticsSnapshot struct {
	HeatmapGrid [7][24]int      `json:"heatmapGrid"` // row = weekday (0=Sunday), column = hour
	HeatmapMax  int             `json:"heatmapMax"`  // floored at 1 so empty grids never divide by zero
	TopSenders  []SenderCount   `json:"topSenders"`  // descending by count, capped at 8
	TypeItems   []CategoryCount `json:"typeItems"`   // descending by count, uncapped
}

// SummaryMetrics feed the dashboard metric tiles.
type SummaryMetrics struct {
	TotalEmails int    `json:"totalEmails"`
	TopSender   string `json:"topSender"` // "addr (count)" or "-"
	PeakHour    string `json:"peakHour"`  // "HH:00"
}
