// Package scrape holds the machinery shared by the person and company
// scrapers: the structured-text provider over section HTML, the paginated
// list collector, and the section error types.
package scrape

import "fmt"

// SectionError is a recoverable-local failure of one profile/company
// section. It is recorded in the aggregate's error map; it never aborts
// sibling sections.
type SectionError struct {
	Section string
	Cause   error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("section %s: %v", e.Section, e.Cause)
}

func (e *SectionError) Unwrap() error {
	return e.Cause
}

// ItemError is a recoverable-local failure of one list item inside a
// list-building section. The index keys the aggregate's error map entry so
// a couple of malformed items stay traceable.
type ItemError struct {
	Section string
	Index   int
	Cause   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("%s item %d: %v", e.Section, e.Index, e.Cause)
}

func (e *ItemError) Unwrap() error {
	return e.Cause
}

// Key returns the item-indexed error map key, e.g. "employee_extraction_3".
func (e *ItemError) Key() string {
	return fmt.Sprintf("%s_%d", e.Section, e.Index)
}
