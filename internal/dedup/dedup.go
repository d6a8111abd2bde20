// Package dedup provides the scrape-call-scoped seen-set used to keep one
// entity from being stored twice when it is reachable through several page
// paths (pagination, sidebar, "show all" modal).
package dedup

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/jonathan/linkedin-scraper/internal/linkurl"
)

// Seen tracks canonical URLs observed during a single scrape invocation.
// The zero value is not usable; create one per scrape with NewSeen so state
// never leaks between unrelated scrapes.
type Seen struct {
	urls mapset.Set[string]
}

// NewSeen creates an empty seen-set.
func NewSeen() *Seen {
	return &Seen{urls: mapset.NewThreadUnsafeSet[string]()}
}

// Add canonicalizes raw and records it, reporting whether it was new.
// An empty URL is never recorded and always reports false.
func (s *Seen) Add(raw string) bool {
	canonical := linkurl.Normalize(raw)
	if canonical == "" {
		return false
	}
	return s.urls.Add(canonical)
}

// Contains reports whether raw's canonical form has been recorded.
func (s *Seen) Contains(raw string) bool {
	return s.urls.Contains(linkurl.Normalize(raw))
}

// Len returns the number of distinct canonical URLs recorded.
func (s *Seen) Len() int {
	return s.urls.Cardinality()
}
