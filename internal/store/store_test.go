package store

import (
	"testing"
	"time"

	"inboxzero-be/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords(senders ...string) []models.EmailRecord {
	rows := make([]models.EmailRecord, 0, len(senders))
	for _, s := range senders {
		rows = append(rows, models.EmailRecord{
			Date:     time.Date(2024, time.July, 1, 10, 0, 0, 0, time.Local),
			From:     s,
			Category: "General",
		})
	}
	return rows
}

func TestNewStartsEmpty(t *testing.T) {
	st := New()

	snap := st.Snapshot()
	require.NotNil(t, snap)
	assert.Equal(t, 1, snap.HeatmapMax)
	assert.Empty(t, snap.TopSenders)
	assert.Empty(t, st.Records())
	assert.Equal(t, "-", st.Metrics().TopSender)
}

func TestReplaceRecomputesSnapshot(t *testing.T) {
	st := New()

	st.Replace(testRecords("a@x.com", "a@x.com", "b@x.com"))

	snap := st.Snapshot()
	require.Len(t, snap.TopSenders, 2)
	assert.Equal(t, "a@x.com", snap.TopSenders[0].Sender)
	assert.Equal(t, 2, snap.TopSenders[0].Count)
	assert.Equal(t, 3, st.Metrics().TotalEmails)
}

func TestSnapshotIsFrozenAcrossReplace(t *testing.T) {
	st := New()
	st.Replace(testRecords("old@x.com"))

	before := st.Snapshot()
	st.Replace(testRecords("new@x.com", "new@x.com"))

	// The previously read snapshot keeps the old values untouched.
	require.Len(t, before.TopSenders, 1)
	assert.Equal(t, "old@x.com", before.TopSenders[0].Sender)

	after := st.Snapshot()
	require.Len(t, after.TopSenders, 1)
	assert.Equal(t, "new@x.com", after.TopSenders[0].Sender)
}

func TestClear(t *testing.T) {
	st := New()
	st.Replace(testRecords("a@x.com"))

	st.Clear()

	assert.Empty(t, st.Records())
	assert.Empty(t, st.Snapshot().TopSenders)
	assert.Equal(t, 1, st.Snapshot().HeatmapMax)
}
