// ABOUTME: Resolution outcome of turning a title into a watch-page URL
// ABOUTME: Absence of a URL is a valid outcome and is not an error

package domain

import "github.com/samber/mo"

// Resolution is the successful outcome of resolving a title.
// WatchURL is None when no candidate was found.
type Resolution struct {
	// Title is the title as given by the caller
	Title string

	// MatchedQuery is the search string whose first candidate supplied the URL
	MatchedQuery string

	// WatchURL is the resolved watch-page URL
	WatchURL mo.Option[string]

	// Attempts is the number of provider searches that were issued
	Attempts int
}

// Found reports whether a watch URL was resolved
func (r Resolution) Found() bool {
	return r.WatchURL.IsPresent()
}

// URLOrNil returns a pointer to the URL, or nil when not found
func (r Resolution) URLOrNil() *string {
	if u, ok := r.WatchURL.Get(); ok {
		return &u
	}
	return nil
}
