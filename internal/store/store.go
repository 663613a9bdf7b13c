// Package store owns the working record set and its analytics snapshot.
// The pair is replaced wholesale in one critical section on every ingest,
// so a reader either sees the previous snapshot or the new one, never a
// torn mix. Exports hold the snapshot value they read and are unaffected
// by replacements that land while they paint.
package store

import (
	"sync"

	"inboxzero-be/internal/analytics"
	"inboxzero-be/internal/models"
)

type Store struct {
	mu   sync.RWMutex
	rows []models.EmailRecord
	snap *models.AnalyticsSnapshot
}

// New returns a store initialized to the empty record set with its empty
// snapshot already computed.
func New() *Store {
	return &Store{snap: analytics.Compute(nil)}
}

// Replace swaps in a new record set and its freshly computed snapshot.
func (s *Store) Replace(rows []models.EmailRecord) *models.AnalyticsSnapshot {
	snap := analytics.Compute(rows)

	s.mu.Lock()
	s.rows = rows
	s.snap = snap
	s.mu.Unlock()

	return snap
}

// Clear resets to the empty record set.
func (s *Store) Clear() {
	s.Replace(nil)
}

// Snapshot returns the last computed snapshot. Callers must treat it as
// read-only.
func (s *Store) Snapshot() *models.AnalyticsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Records returns the current working set.
func (s *Store) Records() []models.EmailRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rows
}

// Metrics derives the summary tiles from the current working set.
func (s *Store) Metrics() models.SummaryMetrics {
	return analytics.Summarize(s.Records())
}
