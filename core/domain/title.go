// ABOUTME: Title normalization helpers shared by resolution and metadata lookups
// ABOUTME: Derives the simplified search form of a user-entered anime title

package domain

import "strings"

// SimplifyTitle returns the part of title before the first colon, trimmed.
// "Naruto: Shippuden" becomes "Naruto"; a title without a colon is only trimmed.
func SimplifyTitle(title string) string {
	head, _, _ := strings.Cut(title, ":")
	return strings.TrimSpace(head)
}

// NormalizeTitle lower-cases and collapses whitespace, for use in cache keys
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(title), " "))
}
