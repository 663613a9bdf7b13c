// Package classify assigns a category label to an email from its subject
// and sender text. Classification is a pure function: the same inputs
// always produce the same label.
package classify

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Transformer chain to remove accents
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Pattern groups in priority order. The first group with a hit wins, so a
// subject carrying both "invoice" and "zoom" classifies as Finance.
var groups = []struct {
	label    string
	patterns []string
}{
	{"Finance", []string{"invoice", "receipt", "payment", "bill"}},
	{"Meetings", []string{"meeting", "calendar", "schedule", "zoom"}},
	{"Promotions", []string{"sale", "offer", "deal", "newsletter", "promo"}},
	{"Work", []string{"github", "deploy", "server", "error", "alert"}},
}

// Detect returns the category label for a subject/sender pair, or "General"
// when no pattern group matches. Matching is case-insensitive and accent
// folded, so "Réceipt" still lands in Finance.
func Detect(subject, from string) string {
	str := strings.ToLower(subject + " " + from)
	if folded, _, err := transform.String(foldAccents, str); err == nil {
		str = folded
	}

	for _, g := range groups {
		for _, p := range g.patterns {
			if strings.Contains(str, p) {
				return g.label
			}
		}
	}
	return "General"
}
