package person

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/linkedin-scraper/internal/scrape"
	"github.com/jonathan/linkedin-scraper/internal/types"
)

func (s *Scraper) scrapeInterests(ctx context.Context, p *types.Person) error {
	doc, err := s.loadDetailsSection(ctx, p.LinkedInURL, "interests")
	if err != nil || doc == nil {
		return err
	}
	for _, i := range ExtractInterests(doc) {
		p.AddInterest(i)
	}
	return nil
}

// ExtractInterests walks every interest category list on the details page.
// The entity kind is inferred from the link's URL path; entries whose name
// cannot be recovered are skipped.
func ExtractInterests(doc *goquery.Document) []types.Interest {
	var interests []types.Interest
	doc.Find(scrape.ListContainerSelector).Each(func(_ int, container *goquery.Selection) {
		for _, entry := range scrape.ListEntries(container) {
			if interest, ok := extractInterest(entry); ok {
				interests = append(interests, interest)
			}
		}
	})
	return interests
}

func extractInterest(entry *goquery.Selection) (types.Interest, bool) {
	link := entry.Find("a[href]").First()
	if link.Length() == 0 {
		return types.Interest{}, false
	}
	href, _ := link.Attr("href")
	if href == "" {
		return types.Interest{}, false
	}

	interest := types.Interest{
		Type: interestTypeFromURL(href),
		URL:  href,
		Name: interestName(link),
	}
	if interest.Name == "" {
		return types.Interest{}, false
	}

	// Follower counts render as "1,029,906 followers"; kept verbatim.
	entry.Find("span").EachWithBreak(func(_ int, span *goquery.Selection) bool {
		text := strings.TrimSpace(span.Text())
		if strings.Contains(strings.ToLower(text), "followers") {
			interest.Followers = cleanLine(text)
			return false
		}
		return true
	})

	return interest, true
}

// interestTypeFromURL maps a link's URL path to the entity kind it follows.
func interestTypeFromURL(url string) types.InterestType {
	switch {
	case strings.Contains(url, "/in/"):
		return types.InterestInfluencer
	case strings.Contains(url, "/company/"):
		return types.InterestCompany
	case strings.Contains(url, "/groups/"):
		return types.InterestGroup
	case strings.Contains(url, "/newsletters/"):
		return types.InterestNewsletter
	case strings.Contains(url, "/school/"):
		return types.InterestSchool
	default:
		return types.InterestUnknown
	}
}

// interestName recovers the entity name from the link: the aria-label on
// company links, the logo's alt text, or the visible name span.
func interestName(link *goquery.Selection) string {
	if label, ok := link.Attr("aria-label"); ok {
		lower := strings.ToLower(label)
		if strings.Contains(lower, "company page for") {
			name := label[strings.Index(lower, "company page for")+len("company page for"):]
			return strings.TrimSpace(name)
		}
	}
	if alt, ok := link.Find("img").First().Attr("alt"); ok && strings.TrimSpace(alt) != "" {
		return strings.TrimSpace(alt)
	}
	return cleanLine(scrape.VisibleText(link))
}
