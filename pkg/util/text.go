// Text helpers shared by the AI layer
package util

import "strings"

// Truncate shortens text to maxLength runes, ending with an ellipsis.
func Truncate(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	if maxLength <= 3 {
		return string(runes[:maxLength])
	}
	return string(runes[:maxLength-3]) + "..."
}

// EstimateTokens gives a rough token count for a prompt or completion.
// One token per ~4 characters is close enough for quota bookkeeping.
func EstimateTokens(text string) int {
	n := len(text)
	if n == 0 {
		return 0
	}
	return (n + 3) / 4
}

// NormalizeTopic lowercases a topic label for interpolation into
// generated content ("Finances & Wealth" -> "finances & wealth").
func NormalizeTopic(topic string) string {
	return strings.ToLower(strings.TrimSpace(topic))
}
