package search

import "strings"

// Normalize case-folds and trims text for matching. Diacritics are kept,
// so "pho" does not match "phở".
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
