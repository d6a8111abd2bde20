package person

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/linkedin-scraper/internal/browser"
	"github.com/jonathan/linkedin-scraper/internal/dedup"
	"github.com/jonathan/linkedin-scraper/internal/linkurl"
	"github.com/jonathan/linkedin-scraper/internal/scrape"
	"github.com/jonathan/linkedin-scraper/internal/types"
)

// connectionsURL is the signed-in user's own connections listing; profile
// connection lists beyond mutual connections are only visible there.
const connectionsURL = "https://www.linkedin.com/mynetwork/invite-connect/connections/"

// maxConnections caps the connections walk; the listing can run to
// thousands of cards.
const maxConnections = 20

var (
	emailRe       = regexp.MustCompile(`Email\s*\n\s*([^\n]+)`)
	websiteRe     = regexp.MustCompile(`Website\s*\n\s*([^\n]+)`)
	phoneRe       = regexp.MustCompile(`Phone\s*\n\s*([^\n]+)`)
	profileLinkRe = regexp.MustCompile(`linkedin\.com/in/[^\s]+`)
	parensRe      = regexp.MustCompile(`\s*\([^)]*\)`)
	connCountRe   = regexp.MustCompile(`(?i)(\d+)\+?\s*connections`)
)

// scrapeContacts gathers the contact-info overlay, the connection count,
// and the connections listing.
func (s *Scraper) scrapeContacts(ctx context.Context, p *types.Person) error {
	if err := s.page.Navigate(ctx, p.LinkedInURL); err != nil {
		return &browser.NavigationError{URL: p.LinkedInURL, Cause: err}
	}
	browser.Pause(ctx, settleLong)

	s.scrapeContactInfoModal(ctx, p)
	s.scrapeConnectionCount(ctx, p)
	s.scrapeConnectionsList(ctx, p)
	return nil
}

// scrapeContactInfoModal opens the contact-info overlay and parses its text.
func (s *Scraper) scrapeContactInfoModal(ctx context.Context, p *types.Person) {
	if err := s.page.Click(ctx, "a[href*='overlay/contact-info']"); err != nil {
		return
	}
	browser.Pause(ctx, settleLong)

	modalText, err := s.page.Text(ctx, ".artdeco-modal__content")
	if err != nil {
		return
	}
	if info := ParseContactInfo(modalText); !info.IsEmpty() {
		p.ContactInfo = &info
	}

	if err := s.page.Click(ctx, "button[aria-label*='Dismiss']"); err == nil {
		browser.Pause(ctx, settleShort)
	}
}

func (s *Scraper) scrapeConnectionCount(ctx context.Context, p *types.Person) {
	text, err := s.page.Text(ctx, ".mt2.relative")
	if err != nil {
		return
	}
	if n := ParseConnectionCount(text); n > 0 {
		p.ConnectionCount = n
	}
}

func (s *Scraper) scrapeConnectionsList(ctx context.Context, p *types.Person) {
	if err := s.page.Navigate(ctx, connectionsURL); err != nil {
		return
	}
	browser.Pause(ctx, settleLong)

	// Two scroll rounds load enough cards for the cap.
	for i := 0; i < 2; i++ {
		if err := browser.ScrollToBottom(ctx, s.page); err != nil {
			return
		}
		browser.Pause(ctx, settleShort)
	}

	html, err := s.page.OuterHTML(ctx, "main")
	if err != nil {
		return
	}
	doc, err := scrape.ParseSectionHTML(html)
	if err != nil {
		return
	}
	for _, c := range ExtractConnections(doc, maxConnections) {
		p.AddConnection(c)
	}
}

// ParseContactInfo parses the stacked label/value text of the contact-info
// overlay. Values that fail basic plausibility (an email without "@") are
// dropped rather than stored wrong.
func ParseContactInfo(modalText string) types.ContactInfo {
	var info types.ContactInfo

	if m := emailRe.FindStringSubmatch(modalText); m != nil {
		email := strings.TrimSpace(m[1])
		if strings.Contains(email, "@") {
			info.Email = email
		}
	}

	if m := websiteRe.FindStringSubmatch(modalText); m != nil {
		website := strings.TrimSpace(parensRe.ReplaceAllString(m[1], ""))
		if website != "" {
			if !strings.HasPrefix(website, "http://") && !strings.HasPrefix(website, "https://") {
				website = "https://" + website
			}
			info.Website = website
		}
	}

	if m := phoneRe.FindStringSubmatch(modalText); m != nil {
		info.Phone = strings.TrimSpace(m[1])
	}

	if m := profileLinkRe.FindString(modalText); m != "" {
		info.LinkedInURL = linkurl.Normalize(m)
	}

	return info
}

// ParseConnectionCount extracts the count from "500+ connections" style
// text. Returns 0 when no count is present.
func ParseConnectionCount(text string) int {
	m := connCountRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// ExtractConnections parses connection cards from the connections listing.
// Cards are deduplicated by canonical profile URL; cards without a
// recoverable name are skipped.
func ExtractConnections(doc *goquery.Document, limit int) []types.Connection {
	seen := dedup.NewSeen()
	var connections []types.Connection

	doc.Find(".mn-connection-card").EachWithBreak(func(_ int, card *goquery.Selection) bool {
		if len(connections) >= limit {
			return false
		}

		href, _ := card.Find("a[href*='/in/']").First().Attr("href")
		if href == "" || !seen.Add(href) {
			return true
		}

		name := cleanLine(card.Find(".mn-connection-card__name").First().Text())
		if name == "" {
			return true
		}

		connections = append(connections, types.Connection{
			Name:     name,
			Headline: cleanLine(card.Find(".mn-connection-card__occupation").First().Text()),
			URL:      linkurl.Normalize(href),
		})
		return true
	})

	if len(connections) > 0 {
		return connections
	}

	// Fallback for listing variants without the card classes: any profile
	// anchor with a visible name span.
	doc.Find("a[href*='/in/']").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		if len(connections) >= limit {
			return false
		}
		href, _ := link.Attr("href")
		if href == "" || !seen.Add(href) {
			return true
		}
		name := cleanLine(link.Find("span[aria-hidden='true']").First().Text())
		if name == "" {
			return true
		}
		connections = append(connections, types.Connection{
			Name: name,
			URL:  linkurl.Normalize(href),
		})
		return true
	})

	return connections
}
