package ingest

import (
	"strings"

	"inboxzero-be/internal/models"
)

// ParseCSV parses raw CSV text into records. The first non-empty line is
// the header; rows with an unparseable date are skipped silently. Returns
// the surviving records and the number of data lines seen, so callers can
// report how much of the upload was usable.
func ParseCSV(text string) ([]models.EmailRecord, int) {
	lines := splitLines(text)
	if len(lines) < 2 {
		return nil, 0
	}

	headers := SplitLine(lines[0])
	for i := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(headers[i]))
	}
	dateIdx := findColumn(headers, "date", "date")
	fromIdx := findColumn(headers, "from", "sender")
	subjectIdx := findColumn(headers, "subject", "subject")

	dataLines := len(lines) - 1
	out := make([]models.EmailRecord, 0, dataLines)
	for _, line := range lines[1:] {
		cols := SplitLine(line)

		d, err := ParseDate(cell(cols, dateIdx))
		if err != nil {
			continue
		}
		out = append(out, NewRecord(d, cell(cols, fromIdx), cell(cols, subjectIdx)))
	}
	return out, dataLines
}

// SplitLine tokenizes one CSV line honoring quoted fields: a field wrapped
// in double quotes may contain commas, and two consecutive quote characters
// inside it stand for one literal quote.
func SplitLine(line string) []string {
	var out []string
	var curr strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		if ch == '"' && inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
			curr.WriteRune('"')
			i++
			continue
		}
		if ch == '"' {
			inQuotes = !inQuotes
			continue
		}
		if ch == ',' && !inQuotes {
			out = append(out, curr.String())
			curr.Reset()
			continue
		}
		curr.WriteRune(ch)
	}

	out = append(out, curr.String())
	return out
}

func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// findColumn locates a header cell equal to exact or containing sub,
// case already folded by the caller. Missing columns come back as -1 and
// read as empty cells.
func findColumn(headers []string, exact, sub string) int {
	for i, h := range headers {
		if h == exact || strings.Contains(h, sub) {
			return i
		}
	}
	return -1
}

func cell(cols []string, idx int) string {
	if idx < 0 || idx >= len(cols) {
		return ""
	}
	return cols[idx]
}
