package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var stripTags = bluemonday.StripTagsPolicy()

// SanitizeText reduces a header value to plain text: entities decoded, any
// markup stripped, whitespace collapsed. Subjects from CSV uploads and Gmail
// headers pass through here before a record is stored.
func SanitizeText(s string) string {
	s = html.UnescapeString(s)
	s = stripTags.Sanitize(s)
	s = html.UnescapeString(s)
	return strings.Join(strings.Fields(s), " ")
}

// ToValidUTF8 cleans strings to ensure they are valid UTF-8
func ToValidUTF8(s string) string {
	return strings.ToValidUTF8(s, "")
}

// Truncate shortens text to maxLength runes, ellipsized.
func Truncate(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength-1]) + "..."
}
