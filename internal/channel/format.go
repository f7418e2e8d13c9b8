package channel

import (
	"strings"
	"unicode/utf8"
)

// SplitSMS breaks a long reply into carrier-sized segments, preferring
// to cut at a newline when one falls in the second half of the segment.
func SplitSMS(text string, maxLen int) []string {
	if utf8.RuneCountInString(text) <= maxLen {
		return []string{text}
	}

	var parts []string
	for len(text) > 0 {
		runes := []rune(text)
		if len(runes) <= maxLen {
			parts = append(parts, text)
			break
		}

		splitAt := maxLen
		next := maxLen
		chunk := runes[:maxLen]
		if i := strings.LastIndex(string(chunk), "\n"); i > 0 {
			if at := utf8.RuneCountInString(string(chunk)[:i]); at > maxLen/2 {
				// The newline is the cut point, not part of either segment.
				splitAt = at
				next = at + 1
			}
		}

		parts = append(parts, string(runes[:splitAt]))
		text = string(runes[next:])
	}

	return parts
}

// TruncateScreen trims text to a single gateway screen. USSD gateways
// reject oversized payloads outright, so cutting is safer than failing.
func TruncateScreen(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen-3]) + "..."
}
