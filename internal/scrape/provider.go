package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/linkedin-scraper/internal/parsing"
)

// Selectors for the site's profile detail pages. Section extractors work on
// HTML snapshots of these containers, so the browser is only needed to pull
// the snapshot.
const (
	// EntrySelector matches one entry of a paged details list.
	EntrySelector = ".pvs-list__paged-list-item"
	// EntitySelector matches the entity container inside an entry.
	EntitySelector = "div[data-view-name='profile-component-entity']"
	// ListContainerSelector matches a details page's list container.
	ListContainerSelector = ".pvs-list__container"
	// visibleSpanSelector matches the visually rendered copy of a text node;
	// the page mirrors every text in a hidden sibling for screen readers.
	visibleSpanSelector = "span[aria-hidden='true']"
)

// ParseSectionHTML parses an HTML snapshot of one page section into a
// traversable document.
func ParseSectionHTML(html string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

// ListEntries returns the paged list entries under root, falling back to
// plain list items for layouts that do not use the paged list classes.
func ListEntries(root *goquery.Selection) []*goquery.Selection {
	entries := selections(root.Find(EntrySelector))
	if len(entries) > 0 {
		return entries
	}
	return selections(root.Find("li"))
}

// EntityParts splits an entry's entity container into its logo and details
// columns. ok is false when the entry does not carry an entity container
// with both columns (ads and filler rows do not).
func EntityParts(entry *goquery.Selection) (logo, details *goquery.Selection, ok bool) {
	entity := entry.Find(EntitySelector).First()
	if entity.Length() == 0 {
		return nil, nil, false
	}
	columns := entity.Children()
	if columns.Length() < 2 {
		return nil, nil, false
	}
	return columns.Eq(0), columns.Eq(1), true
}

// SummaryTokens extracts the ordered short text tokens from a details
// column's summary block: one token per rendered line (title, organization,
// dates, location), duplicated screen-reader copies collapsed.
func SummaryTokens(details *goquery.Selection) []string {
	summary := details.Children().Eq(0)
	if summary.Length() == 0 {
		return nil
	}

	var tokens []string
	summary.Children().Each(func(_ int, line *goquery.Selection) {
		line.Children().Each(func(_ int, cell *goquery.Selection) {
			if text := VisibleText(cell); text != "" {
				tokens = append(tokens, text)
			}
		})
		if line.Children().Length() == 0 {
			if text := VisibleText(line); text != "" {
				tokens = append(tokens, text)
			}
		}
	})
	return tokens
}

// SummaryTextBlock returns the details column's second block, which holds
// description text, skills lines, and nested position lists. Nil when the
// entry has no such block.
func SummaryTextBlock(details *goquery.Selection) *goquery.Selection {
	block := details.Children().Eq(1)
	if block.Length() == 0 {
		return nil
	}
	return block
}

// NestedEntries returns the nested paged-list entries inside a summary text
// block; a non-empty result means several positions are grouped under one
// organization.
func NestedEntries(block *goquery.Selection) []*goquery.Selection {
	if block == nil {
		return nil
	}
	return selections(block.Find(ListContainerSelector).Find(EntrySelector))
}

// FirstHref returns the href of sel itself or its first descendant anchor.
func FirstHref(sel *goquery.Selection) string {
	if href, ok := sel.Attr("href"); ok {
		return href
	}
	if href, ok := sel.Find("a[href]").First().Attr("href"); ok {
		return href
	}
	return ""
}

// VisibleText returns the text of sel's visually rendered copy, collapsing
// the screen-reader duplication when no explicit visible span exists.
func VisibleText(sel *goquery.Selection) string {
	if visible := sel.Find(visibleSpanSelector).First(); visible.Length() > 0 {
		return strings.TrimSpace(visible.Text())
	}
	return parsing.CleanSingleString(strings.TrimSpace(sel.Text()))
}

// DescriptionAndSkills walks the nested sub-lists of a summary text block
// and splits the collected lines into description text and a deduplicated
// skills list. Each list item is cleaned of internal duplication first, then
// near-duplicate lines pulled from parallel DOM paths are dropped.
func DescriptionAndSkills(block *goquery.Selection) (string, []string) {
	if block == nil {
		return "", nil
	}

	items := block.Find("ul li")
	if items.Length() == 0 {
		// No sub-list: the block is one flattened text blob that may carry
		// the same sentences through several DOM paths.
		return parsing.ExtractDescriptionAndSkills(parsing.CollapseDuplicates(block.Text()))
	}

	var collected []string
	items.Each(func(_ int, item *goquery.Selection) {
		text := parsing.CleanSingleString(strings.TrimSpace(directText(item)))
		if text != "" {
			collected = append(collected, text)
		}
	})
	return parsing.ExtractDescriptionAndSkills(strings.Join(collected, "\n"))
}

// directText returns item's text excluding nested list items, so a parent
// item does not re-contribute its children's lines.
func directText(item *goquery.Selection) string {
	if item.Find("ul li").Length() == 0 {
		return item.Text()
	}
	clone := item.Clone()
	clone.Find("ul").Remove()
	return clone.Text()
}

func selections(s *goquery.Selection) []*goquery.Selection {
	var out []*goquery.Selection
	s.Each(func(_ int, sel *goquery.Selection) {
		out = append(out, sel)
	})
	return out
}
