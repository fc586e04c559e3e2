// ABOUTME: Search domain models for external anime title lookups
// ABOUTME: Defines the typed result set returned by watch-site search providers

package domain

import "strings"

// SearchCandidate is a single record returned by a search provider
type SearchCandidate struct {
	// ID is the provider's identifier for the title (usually a URL slug)
	ID string

	// Title is the title as listed by the provider
	Title string

	// URL is the absolute watch-page URL. Empty when the record has none.
	URL string

	// Type is the media type reported by the provider (e.g. "Anime", "OVA")
	Type string

	// Cover is the cover image URL
	Cover string

	// Synopsis is the short description shown in search listings
	Synopsis string

	// Rating is the provider's score, as displayed
	Rating string
}

// WatchURL returns the candidate's watch URL, trimmed, and whether it is usable
func (c SearchCandidate) WatchURL() (string, bool) {
	u := strings.TrimSpace(c.URL)
	return u, u != ""
}

// SearchResultSet is the ordered list of candidates for a query
type SearchResultSet struct {
	// Query is the search string that produced these results
	Query string

	// Data holds the candidates in provider order. May be empty.
	Data []SearchCandidate
}

// First returns the first candidate, if any
func (s *SearchResultSet) First() (SearchCandidate, bool) {
	if s == nil || len(s.Data) == 0 {
		return SearchCandidate{}, false
	}
	return s.Data[0], true
}
