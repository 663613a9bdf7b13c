package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	t.Run("two valid rows", func(t *testing.T) {
		text := "date,from,subject\n" +
			"2024-01-01T09:00:00Z,a@x.com,Invoice #1\n" +
			"2024-01-01T09:05:00Z,a@x.com,Team meeting"

		rows, dataLines := ParseCSV(text)
		require.Len(t, rows, 2)
		assert.Equal(t, 2, dataLines)

		assert.Equal(t, "a@x.com", rows[0].From)
		assert.Equal(t, "Invoice #1", rows[0].Subject)
		assert.Equal(t, "Finance", rows[0].Category)
		assert.Equal(t, "Meetings", rows[1].Category)
	})

	t.Run("bad date row is dropped silently", func(t *testing.T) {
		text := "date,from,subject\n" +
			"2024-01-01T09:00:00Z,a@x.com,First\n" +
			"not-a-date,b@x.com,Broken\n" +
			"2024-01-02T10:00:00Z,c@x.com,Third"

		rows, dataLines := ParseCSV(text)
		assert.Len(t, rows, 2)
		assert.Equal(t, 3, dataLines)
	})

	t.Run("parsed rows never exceed data lines", func(t *testing.T) {
		text := "date,from,subject\n" +
			"garbage,a,one\n" +
			"2024-05-01 08:00,b@x.com,two\n" +
			",c@x.com,three\n" +
			"2024-05-02,d@x.com,four"

		rows, dataLines := ParseCSV(text)
		assert.LessOrEqual(t, len(rows), dataLines)
		for _, r := range rows {
			assert.False(t, r.Date.IsZero())
		}
	})

	t.Run("quoted fields with embedded comma and escaped quote", func(t *testing.T) {
		text := "date,sender,subject\n" +
			`2024-01-05 10:00,"Ops Team <ops@co.io>","Hello, ""world"""`

		rows, _ := ParseCSV(text)
		require.Len(t, rows, 1)
		assert.Equal(t, "ops@co.io", rows[0].From)
		assert.Equal(t, `Hello, "world"`, rows[0].Subject)
	})

	t.Run("header matched by substring and case insensitively", func(t *testing.T) {
		text := "Received Date,Sender Email,Email Subject\n" +
			"2024-02-10 14:30,team@asana.com,Standup notes"

		rows, _ := ParseCSV(text)
		require.Len(t, rows, 1)
		assert.Equal(t, "team@asana.com", rows[0].From)
		assert.Equal(t, "Standup notes", rows[0].Subject)
	})

	t.Run("missing sender column defaults to unknown", func(t *testing.T) {
		text := "date,subject\n2024-03-01 09:00,Hi"

		rows, _ := ParseCSV(text)
		require.Len(t, rows, 1)
		assert.Equal(t, "unknown", rows[0].From)
	})

	t.Run("blank sender cell defaults to unknown", func(t *testing.T) {
		text := "date,from,subject\n2024-03-01 09:00,   ,Hi"

		rows, _ := ParseCSV(text)
		require.Len(t, rows, 1)
		assert.Equal(t, "unknown", rows[0].From)
	})

	t.Run("missing date column drops every row", func(t *testing.T) {
		text := "from,subject\na@x.com,Hi\nb@x.com,Yo"

		rows, dataLines := ParseCSV(text)
		assert.Empty(t, rows)
		assert.Equal(t, 2, dataLines)
	})

	t.Run("missing subject column defaults to empty", func(t *testing.T) {
		text := "date,from\n2024-03-01 09:00,a@x.com"

		rows, _ := ParseCSV(text)
		require.Len(t, rows, 1)
		assert.Equal(t, "", rows[0].Subject)
	})

	t.Run("CRLF line endings", func(t *testing.T) {
		text := "date,from,subject\r\n2024-01-01T09:00:00Z,a@x.com,Hi\r\n"

		rows, _ := ParseCSV(text)
		assert.Len(t, rows, 1)
	})

	t.Run("header only yields nothing", func(t *testing.T) {
		rows, dataLines := ParseCSV("date,from,subject")
		assert.Empty(t, rows)
		assert.Zero(t, dataLines)
	})

	t.Run("empty input yields nothing", func(t *testing.T) {
		rows, dataLines := ParseCSV("")
		assert.Empty(t, rows)
		assert.Zero(t, dataLines)
	})

	t.Run("markup in subject is stripped", func(t *testing.T) {
		text := "date,from,subject\n" +
			`2024-01-01T09:00:00Z,a@x.com,"<b>Big</b> news"`

		rows, _ := ParseCSV(text)
		require.Len(t, rows, 1)
		assert.Equal(t, "Big news", rows[0].Subject)
	})
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain fields", "a,b,c", []string{"a", "b", "c"}},
		{"quoted comma", `a,"b,c",d`, []string{"a", "b,c", "d"}},
		{"escaped quotes", `"say ""hi""",x`, []string{`say "hi"`, "x"}},
		{"trailing empty field", "a,b,", []string{"a", "b", ""}},
		{"single field", "solo", []string{"solo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLine(tt.line))
		})
	}
}

func TestNormalizeSender(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"angle bracket address extracted", "Asana Team <team@asana.com>", "team@asana.com"},
		{"bare address trimmed", "  a@b.com  ", "a@b.com"},
		{"no address form keeps raw text", "Mailer Daemon", "Mailer Daemon"},
		{"empty becomes unknown", "", "unknown"},
		{"whitespace only becomes unknown", "   ", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSender(tt.raw))
		})
	}
}

func TestParseDate(t *testing.T) {
	valid := []string{
		"2024-01-01T09:00:00Z",
		"Mon, 02 Jan 2006 15:04:05 -0700",
		"2024-01-02 15:04:05",
		"2024-01-02 15:04",
		"2024-01-02",
		"01/02/2024 09:30",
	}
	for _, raw := range valid {
		t.Run(raw, func(t *testing.T) {
			d, err := ParseDate(raw)
			require.NoError(t, err)
			assert.False(t, d.IsZero())
		})
	}

	invalid := []string{"", "   ", "not-a-date", "13/45/9999", "yesterday"}
	for _, raw := range invalid {
		t.Run("invalid "+strings.TrimSpace(raw), func(t *testing.T) {
			_, err := ParseDate(raw)
			assert.Error(t, err)
		})
	}
}

func TestSampleData(t *testing.T) {
	rows := SampleData()
	require.Len(t, rows, 240)

	for _, r := range rows {
		assert.False(t, r.Date.IsZero())
		assert.NotEmpty(t, r.From)
		assert.NotEmpty(t, r.Category)
	}
}
