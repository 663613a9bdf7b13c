// Package ingest turns raw input (CSV text or mail header values) into
// normalized email records. Rows whose date cannot be parsed are dropped
// here, never stored, so every record downstream carries a valid timestamp.
package ingest

import (
	"regexp"
	"strings"
	"time"

	"inboxzero-be/internal/classify"
	"inboxzero-be/internal/models"
	"inboxzero-be/internal/utils"
)

var addrPattern = regexp.MustCompile(`<([^>]+)>`)

// NormalizeSender reduces a raw "From" value to a bare address: the
// angle-bracket address when the header form "Name <addr>" is present,
// otherwise the trimmed raw text, otherwise "unknown".
func NormalizeSender(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "unknown"
	}
	if m := addrPattern.FindStringSubmatch(raw); m != nil {
		if addr := strings.TrimSpace(m[1]); addr != "" {
			return addr
		}
	}
	return raw
}

// NewRecord builds a record from an already-validated date and raw header
// text, applying the shared sender/subject rules and classifying once.
func NewRecord(date time.Time, rawFrom, rawSubject string) models.EmailRecord {
	from := NormalizeSender(utils.ToValidUTF8(rawFrom))
	subject := utils.SanitizeText(utils.ToValidUTF8(rawSubject))
	return models.EmailRecord{
		Date:     date,
		From:     from,
		Subject:  subject,
		Category: classify.Detect(subject, from),
	}
}
