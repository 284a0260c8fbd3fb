package parser

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonAlnumRe   = regexp.MustCompile(`[^a-zA-Z0-9]`)
	// timeRangeRe matches slot labels like "9:00 am - 10:15 am" or
	// "12:00 noon - 1:15 pm".
	timeRangeRe = regexp.MustCompile(`(?i)\d{1,2}:\d{2}\s*(am|pm|noon)`)
	// slotPrefixRe strips a leading "Slot N" token from a header label.
	slotPrefixRe = regexp.MustCompile(`(?i)^slot\s*\d+\s*`)
)

// NormalizeWhitespace collapses newlines and runs of spaces into single
// spaces and trims the result.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// StripNonAlnum removes every non-alphanumeric character.
// Used for the second-chance course code lookup.
func StripNonAlnum(s string) string {
	return nonAlnumRe.ReplaceAllString(s, "")
}

// NormalizeEmail trims and lower-cases an email for comparison.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CleanSlotLabel normalizes a multi-line slot header like
// "Slot 2\n10:30 am - 11:45 am" to its time range. When no time range is
// recognizable, the whitespace-collapsed raw label is kept.
func CleanSlotLabel(raw string) string {
	collapsed := NormalizeWhitespace(raw)
	stripped := strings.TrimSpace(slotPrefixRe.ReplaceAllString(collapsed, ""))
	if timeRangeRe.MatchString(stripped) {
		return stripped
	}
	return collapsed
}

// containsFold reports case-insensitive substring containment.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// sectionLetter normalizes a cell to "A"/"B", or "" when it is neither.
func sectionLetter(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return "A"
	case "B":
		return "B"
	default:
		return ""
	}
}

// columnValue returns row[idx] trimmed, or "" when the row is shorter.
func columnValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
