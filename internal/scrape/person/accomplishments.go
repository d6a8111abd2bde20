package person

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/linkedin-scraper/internal/browser"
	"github.com/jonathan/linkedin-scraper/internal/scrape"
	"github.com/jonathan/linkedin-scraper/internal/types"
)

// Caps on accomplishment list walks; these sections occasionally render
// hundreds of stale entries.
const (
	maxMainPageItems = 10
	maxDetailItems   = 20
)

// scrapeAccomplishments gathers honors and languages. Both surface on the
// main profile page and, more completely, on their details pages; entries
// are deduplicated by title/name across the two sources.
func (s *Scraper) scrapeAccomplishments(ctx context.Context, p *types.Person) error {
	// Main page first: some profiles have no details pages at all.
	if err := s.page.Navigate(ctx, p.LinkedInURL); err == nil {
		browser.Pause(ctx, settleLong)
		_ = browser.ScrollToBottom(ctx, s.page)
		browser.Pause(ctx, settleLong)

		if html, err := s.page.OuterHTML(ctx, "main"); err == nil {
			if doc, err := scrape.ParseSectionHTML(html); err == nil {
				for _, h := range ExtractMainPageHonors(doc) {
					if !p.HasHonor(h.Title) {
						p.AddHonor(h)
					}
				}
				for _, l := range ExtractMainPageLanguages(doc) {
					if !p.HasLanguage(l.Name) {
						p.AddLanguage(l)
					}
				}
			}
		}
	}

	if doc, err := s.loadDetailsSection(ctx, p.LinkedInURL, "honors"); err == nil && doc != nil {
		for _, h := range ExtractDetailHonors(doc) {
			if !p.HasHonor(h.Title) {
				p.AddHonor(h)
			}
		}
	}
	if doc, err := s.loadDetailsSection(ctx, p.LinkedInURL, "languages"); err == nil && doc != nil {
		for _, l := range ExtractDetailLanguages(doc) {
			if !p.HasLanguage(l.Name) {
				p.AddLanguage(l)
			}
		}
	}
	return nil
}

// ExtractMainPageHonors reads the "Honors & awards" section of the main
// profile page.
func ExtractMainPageHonors(doc *goquery.Document) []types.Honor {
	section := sectionWithHeading(doc, "Honors & awards")
	if section == nil {
		return nil
	}

	var honors []types.Honor
	items := section.Find("li")
	items.EachWithBreak(func(i int, item *goquery.Selection) bool {
		if i >= maxMainPageItems {
			return false
		}
		title := cleanLine(item.Find("div[aria-hidden='true'] span").First().Text())
		if title == "" {
			title = cleanLine(scrape.VisibleText(item))
		}
		if title == "" {
			return true
		}
		h := types.Honor{Title: title}
		h.Issuer, h.Date = parseIssuedBy(findSpanContaining(item, "Issued by"))
		honors = append(honors, h)
		return true
	})
	return honors
}

// ExtractDetailHonors reads the /details/honors page, which additionally
// carries "Associated with" lines and document links.
func ExtractDetailHonors(doc *goquery.Document) []types.Honor {
	var honors []types.Honor
	doc.Find(scrape.ListContainerSelector).Each(func(_ int, container *goquery.Selection) {
		entries := scrape.ListEntries(container)
		if len(entries) > maxDetailItems {
			entries = entries[:maxDetailItems]
		}
		for _, entry := range entries {
			_, details, ok := scrape.EntityParts(entry)
			if !ok {
				continue
			}
			title := cleanLine(details.Find("span[aria-hidden='true']").First().Text())
			if title == "" {
				continue
			}

			h := types.Honor{Title: title}
			h.Issuer, h.Date = parseIssuedBy(findSpanContaining(details, "Issued by"))
			if assoc := findSpanContaining(details, "Associated with"); assoc != "" {
				h.AssociatedWith = strings.TrimSpace(strings.ReplaceAll(assoc, "Associated with", ""))
			}
			h.DocumentURL = findDocumentURL(entry)
			honors = append(honors, h)
		}
	})
	return honors
}

// ExtractMainPageLanguages reads the "Languages" section of the main page.
func ExtractMainPageLanguages(doc *goquery.Document) []types.Language {
	section := sectionWithHeading(doc, "Languages")
	if section == nil {
		return nil
	}

	var languages []types.Language
	section.Find("li").EachWithBreak(func(i int, item *goquery.Selection) bool {
		if i >= maxMainPageItems {
			return false
		}
		if l, ok := parseLanguageLines(item.Text()); ok {
			languages = append(languages, l)
		}
		return true
	})
	return languages
}

// ExtractDetailLanguages reads the /details/languages page.
func ExtractDetailLanguages(doc *goquery.Document) []types.Language {
	var languages []types.Language
	doc.Find(scrape.ListContainerSelector).Each(func(_ int, container *goquery.Selection) {
		entries := scrape.ListEntries(container)
		if len(entries) > maxDetailItems {
			entries = entries[:maxDetailItems]
		}
		for _, entry := range entries {
			name := cleanLine(entry.Find("span[aria-hidden='true']").First().Text())
			if name == "" {
				continue
			}
			l := types.Language{Name: name}
			if prof := entry.Find("span.t-14").First(); prof.Length() > 0 {
				l.Proficiency = firstLine(prof.Text())
			}
			languages = append(languages, l)
		}
	})
	return languages
}

// sectionWithHeading finds the profile section whose heading text contains
// the given title, or nil.
func sectionWithHeading(doc *goquery.Document, heading string) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("section").EachWithBreak(func(_ int, section *goquery.Selection) bool {
		h := section.Find("h2, h3").First()
		if h.Length() > 0 && strings.Contains(h.Text(), heading) {
			found = section
			return false
		}
		return true
	})
	return found
}

// findSpanContaining returns the text of the first span whose content
// contains needle, or "".
func findSpanContaining(root *goquery.Selection, needle string) string {
	var text string
	root.Find("span").EachWithBreak(func(_ int, span *goquery.Selection) bool {
		if strings.Contains(span.Text(), needle) {
			text = cleanLine(span.Text())
			return false
		}
		return true
	})
	return text
}

// parseIssuedBy splits "Issued by Acme · Jun 2021" into issuer and date.
func parseIssuedBy(text string) (issuer, date string) {
	if !strings.Contains(text, "Issued by") {
		return "", ""
	}
	rest := strings.ReplaceAll(text, "Issued by", "")
	parts := strings.SplitN(rest, "·", 2)
	issuer = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		date = strings.TrimSpace(parts[1])
	}
	return issuer, date
}

// findDocumentURL returns the first media/document link of an entry, such
// as an attached certificate.
func findDocumentURL(entry *goquery.Selection) string {
	var url string
	entry.Find("a[href]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		href, _ := link.Attr("href")
		if strings.Contains(href, "single-media-viewer") || strings.Contains(href, "type=DOCUMENT") {
			url = href
			return false
		}
		return true
	})
	return url
}

// parseLanguageLines parses the stacked text of a main-page language item:
// name on the first line, a "... proficiency" line somewhere below.
func parseLanguageLines(raw string) (types.Language, bool) {
	lines := strings.Split(raw, "\n")
	var l types.Language
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if l.Name == "" {
			l.Name = line
			continue
		}
		if strings.Contains(strings.ToLower(line), "proficiency") {
			l.Proficiency = line
			break
		}
	}
	return l, l.Name != ""
}

func firstLine(raw string) string {
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
