package domain

import "strings"

// NormalizePlace collapses runs of whitespace and trims the ends.
func NormalizePlace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// PlaceKey is the cache key for a place name: normalized and lower-cased,
// so "New  York" and "new york" share an entry.
func PlaceKey(s string) string {
	return strings.ToLower(NormalizePlace(s))
}
