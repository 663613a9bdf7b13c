package ingest

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

// Layouts tried after RFC 822/1123 mail dates. Naive layouts resolve in the
// local zone, matching how the dashboard derives weekday and hour.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
}

var errBadDate = errors.New("unparseable date")

// ParseDate parses a raw date cell or header value into a timestamp.
// Callers drop the row when an error comes back.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errBadDate
	}

	if d, err := mail.ParseDate(raw); err == nil {
		return d, nil
	}
	for _, layout := range dateLayouts {
		if d, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return d, nil
		}
	}
	return time.Time{}, errBadDate
}
