// Package analytics derives the dashboard aggregates from a record set.
// Every function here is a pure reduction over its input: a snapshot is
// always recomputed from scratch, never patched incrementally.
package analytics

import (
	"fmt"
	"sort"

	"inboxzero-be/internal/models"
)

// counter groups string keys while preserving first-seen order, so equal
// counts rank deterministically for a fixed input order.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if key == "" {
		key = "Unknown"
	}
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// Compute rebuilds the full snapshot for a record set. Weekday and hour are
// taken in the local zone, matching what the dashboard displays.
func Compute(rows []models.EmailRecord) *models.AnalyticsSnapshot {
	snap := &models.AnalyticsSnapshot{HeatmapMax: 1}

	for _, r := range rows {
		d := r.Date.Local()
		snap.HeatmapGrid[int(d.Weekday())][d.Hour()]++
	}
	for _, row := range snap.HeatmapGrid {
		for _, v := range row {
			if v > snap.HeatmapMax {
				snap.HeatmapMax = v
			}
		}
	}

	senders := SenderRanking(rows)
	if len(senders) > 8 {
		senders = senders[:8]
	}
	snap.TopSenders = senders

	types := newCounter()
	for _, r := range rows {
		types.add(r.Category)
	}
	snap.TypeItems = make([]models.CategoryCount, 0, len(types.order))
	for _, label := range types.order {
		snap.TypeItems = append(snap.TypeItems, models.CategoryCount{Category: label, Count: types.counts[label]})
	}
	sort.SliceStable(snap.TypeItems, func(i, j int) bool {
		return snap.TypeItems[i].Count > snap.TypeItems[j].Count
	})

	return snap
}

// SenderRanking returns every sender with its count, descending, ties kept
// in first-seen order. Compute caps this at 8 for the snapshot; the search
// endpoint serves it uncapped.
func SenderRanking(rows []models.EmailRecord) []models.SenderCount {
	c := newCounter()
	for _, r := range rows {
		c.add(r.From)
	}

	out := make([]models.SenderCount, 0, len(c.order))
	for _, sender := range c.order {
		out = append(out, models.SenderCount{Sender: sender, Count: c.counts[sender]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// Summarize derives the metric-tile values. The top sender keeps first-seen
// order on ties; the peak hour ignores weekday and breaks ties toward the
// lowest hour index, which lands on 00:00 for an empty set.
func Summarize(rows []models.EmailRecord) models.SummaryMetrics {
	m := models.SummaryMetrics{TotalEmails: len(rows)}

	if ranking := SenderRanking(rows); len(ranking) > 0 {
		m.TopSender = fmt.Sprintf("%s (%d)", ranking[0].Sender, ranking[0].Count)
	} else {
		m.TopSender = "-"
	}

	var hourCount [24]int
	for _, r := range rows {
		hourCount[r.Date.Local().Hour()]++
	}
	peakHour, peakCount := -1, -1
	for hour, count := range hourCount {
		if count > peakCount {
			peakHour, peakCount = hour, count
		}
	}
	m.PeakHour = fmt.Sprintf("%02d:00", peakHour)

	return m
}
