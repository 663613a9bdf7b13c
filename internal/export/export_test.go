package export

import (
	"bytes"
	"testing"
	"time"

	"inboxzero-be/internal/models"
	"inboxzero-be/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func sampleSnapshot() *models.AnalyticsSnapshot {
	snap := &models.AnalyticsSnapshot{
		HeatmapMax: 3,
		TopSenders: []models.SenderCount{
			{Sender: "busy@x.com", Count: 3},
			{Sender: "other@x.com", Count: 1},
		},
		TypeItems: []models.CategoryCount{
			{Category: "Finance", Count: 3},
			{Category: "General", Count: 1},
		},
	}
	snap.HeatmapGrid[2][9] = 3
	snap.HeatmapGrid[3][14] = 1
	return snap
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, time.March, 9, 16, 45, 0, 0, time.UTC)

	assert.Equal(t, "inboxzero-heatmap-2024-03-09.png", Filename("heatmap", now))
	assert.Equal(t, "inboxzero-senders-2024-03-09.png", Filename("senders", now))
	assert.Equal(t, "inboxzero-types-2024-03-09.png", Filename("types", now))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Email Activity Heatmap", Title("heatmap"))
	assert.Equal(t, "Who Wastes Most of Your Time", Title("senders"))
	assert.Equal(t, "Email Types", Title("types"))
	assert.Equal(t, "Chart", Title("bogus"))
}

func TestPNG(t *testing.T) {
	snap := sampleSnapshot()

	for _, chart := range []string{"heatmap", "senders", "types"} {
		t.Run(chart, func(t *testing.T) {
			data, err := PNG(chart, snap)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(data, pngSignature))
		})
	}

	t.Run("empty snapshot still renders", func(t *testing.T) {
		empty := &models.AnalyticsSnapshot{HeatmapMax: 1}
		for _, chart := range []string{"heatmap", "senders", "types"} {
			data, err := PNG(chart, empty)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(data, pngSignature))
		}
	})

	t.Run("unknown chart", func(t *testing.T) {
		_, err := PNG("bogus", sampleSnapshot())
		assert.ErrorIs(t, err, ErrUnknownChart)
	})
}

func TestTypesChartPNG(t *testing.T) {
	data, err := TypesChartPNG(sampleSnapshot())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngSignature))
}

func TestPrintDocument(t *testing.T) {
	doc, err := PrintDocument("types", sampleSnapshot())
	require.NoError(t, err)

	html := string(doc)
	assert.Contains(t, html, "<title>Email Types</title>")
	assert.Contains(t, html, "data:image/png;base64,")
	assert.Contains(t, html, "window.print()")

	_, err = PrintDocument("bogus", sampleSnapshot())
	assert.ErrorIs(t, err, ErrUnknownChart)
}

// An export started from a snapshot keeps painting those values even when
// the working set is replaced underneath it.
func TestExportFrozenAgainstConcurrentReplace(t *testing.T) {
	st := store.New()
	st.Replace([]models.EmailRecord{{
		Date: time.Date(2024, time.July, 1, 10, 0, 0, 0, time.Local),
		From: "old@x.com", Category: "Finance",
	}})

	snap := st.Snapshot()
	before, err := PNG("senders", snap)
	require.NoError(t, err)

	st.Replace([]models.EmailRecord{{
		Date: time.Date(2024, time.July, 2, 11, 0, 0, 0, time.Local),
		From: "new@x.com", Category: "Meetings",
	}})

	after, err := PNG("senders", snap)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	fresh, err := PNG("senders", st.Snapshot())
	require.NoError(t, err)
	assert.NotEqual(t, before, fresh)
}
