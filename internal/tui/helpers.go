package tui

import (
	"strings"
	"unicode/utf8"
)

// truncStr truncates a string to maxLen runes, appending an ellipsis if needed.
func truncStr(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-1]) + "…"
}

// oneLine collapses newlines and runs of whitespace so user text fits a row.
func oneLine(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

// visibleRange returns the [start, end) slice of n rows to draw so that
// cursor stays on screen within height rows.
func visibleRange(cursor, n, height int) (int, int) {
	if height <= 0 || n <= height {
		return 0, n
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > n {
		start = n - height
	}
	return start, start + height
}
