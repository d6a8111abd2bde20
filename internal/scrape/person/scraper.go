// Package person scrapes person profiles: per-section extractors over
// section HTML plus the orchestrator that runs them with partial-failure
// isolation.
package person

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/linkedin-scraper/internal/browser"
	"github.com/jonathan/linkedin-scraper/internal/config"
	"github.com/jonathan/linkedin-scraper/internal/dedup"
	"github.com/jonathan/linkedin-scraper/internal/linkurl"
	"github.com/jonathan/linkedin-scraper/internal/scrape"
	"github.com/jonathan/linkedin-scraper/internal/types"
)

// Settle times after navigation and scrolling. The page renders list
// sections lazily; there is no completion signal to wait on.
const (
	settleLong  = 2 * time.Second
	settleShort = 1 * time.Second
)

// Section names used as keys in the aggregate's error map.
const (
	sectionBasicInfo       = "basic_info"
	sectionExperience      = "experience"
	sectionEducation       = "education"
	sectionInterests       = "interests"
	sectionAccomplishments = "accomplishments"
	sectionContacts        = "contacts"
)

// Scraper scrapes person profiles through an authenticated page.
type Scraper struct {
	page    browser.Page
	verbose bool
}

// NewScraper creates a person profile scraper on the given page.
func NewScraper(page browser.Page, verbose bool) *Scraper {
	return &Scraper{page: page, verbose: verbose}
}

func (s *Scraper) logf(format string, args ...any) {
	if s.verbose {
		log.Printf("[SCRAPE] "+format, args...)
	}
}

// Scrape visits the profile at url and populates a Person aggregate with
// the requested sections. Section failures are recorded in the aggregate's
// error map and do not stop the remaining sections; only an invalid URL or
// a failed initial navigation is returned as an error.
func (s *Scraper) Scrape(ctx context.Context, url string, fields config.PersonFields) (*types.Person, error) {
	if !linkurl.IsLinkedInURL(url) || !linkurl.IsProfileURL(url) {
		return nil, fmt.Errorf("not a profile URL: %s", url)
	}
	profileURL := linkurl.Normalize(url)

	if err := s.page.Navigate(ctx, profileURL); err != nil {
		return nil, fmt.Errorf("initial navigation: %w", err)
	}
	browser.Pause(ctx, settleLong)

	p := types.NewPerson(profileURL)

	if fields.Has(config.PersonBasicInfo) {
		s.logf("person: basic info")
		p.RecordError(sectionBasicInfo, s.scrapeBasicInfo(ctx, p))
	}
	if fields.Has(config.PersonExperience) && ctx.Err() == nil {
		s.logf("person: experience")
		p.RecordError(sectionExperience, s.scrapeExperiences(ctx, p))
	}
	if fields.Has(config.PersonEducation) && ctx.Err() == nil {
		s.logf("person: education")
		p.RecordError(sectionEducation, s.scrapeEducations(ctx, p))
	}
	if fields.Has(config.PersonInterests) && ctx.Err() == nil {
		s.logf("person: interests")
		p.RecordError(sectionInterests, s.scrapeInterests(ctx, p))
	}
	if fields.Has(config.PersonAccomplishments) && ctx.Err() == nil {
		s.logf("person: accomplishments")
		p.RecordError(sectionAccomplishments, s.scrapeAccomplishments(ctx, p))
	}
	if fields.Has(config.PersonContacts) && ctx.Err() == nil {
		s.logf("person: contacts")
		p.RecordError(sectionContacts, s.scrapeContacts(ctx, p))
	}

	return p, nil
}

// loadDetailsSection navigates to a /details/<suffix> page, forces lazy
// content to render, and returns the parsed main content. A missing main
// container yields a nil document, which extractors treat as zero entries.
func (s *Scraper) loadDetailsSection(ctx context.Context, profileURL, suffix string) (*goquery.Document, error) {
	url := profileURL + "/details/" + suffix
	if err := s.page.Navigate(ctx, url); err != nil {
		return nil, err
	}
	browser.Pause(ctx, settleLong)

	if err := browser.ScrollToHalf(ctx, s.page); err != nil {
		return nil, err
	}
	browser.Pause(ctx, settleShort)
	if err := browser.ScrollToBottom(ctx, s.page); err != nil {
		return nil, err
	}
	browser.Pause(ctx, settleLong)

	html, err := s.page.OuterHTML(ctx, "main")
	if err != nil {
		return nil, nil
	}
	return scrape.ParseSectionHTML(html)
}

// scrapeBasicInfo reads name, location, headline, about and the
// open-to-work flag from the main profile page.
func (s *Scraper) scrapeBasicInfo(ctx context.Context, p *types.Person) error {
	if name, err := s.page.Text(ctx, ".mt2.relative h1"); err == nil && name != "" {
		p.Name = cleanLine(name)
	}

	if loc, err := s.page.Text(ctx, ".text-body-small.inline.t-black--light.break-words"); err == nil {
		p.Location = cleanLine(loc)
	}

	if headline, err := s.page.Text(ctx, ".mt2.relative h1 ~ div"); err == nil {
		headline = cleanLine(headline)
		if headline != "" && headline != p.Name && len(headline) > 5 {
			p.Headline = headline
		}
	}

	// The about section is the sibling of the #about anchor.
	var about string
	expr := `(() => {
		const anchor = document.querySelector('#about');
		if (!anchor || !anchor.parentElement) return '';
		const body = anchor.parentElement.querySelector('.display-flex');
		return body ? body.innerText : '';
	})()`
	if err := s.page.Evaluate(ctx, expr, &about); err == nil && about != "" {
		p.About = splitAbout(about)
	}

	if title, ok, err := s.page.Attribute(ctx, ".pv-top-card-profile-picture img", "title"); err == nil && ok {
		p.OpenToWork = containsFold(title, "#OPEN_TO_WORK")
	}

	// "People also viewed" renders in the page aside when present.
	if html, err := s.page.OuterHTML(ctx, "aside"); err == nil {
		if doc, err := scrape.ParseSectionHTML(html); err == nil {
			p.AlsoViewedURLs = ExtractAlsoViewed(doc, p.LinkedInURL)
		}
	}

	return nil
}

// ExtractAlsoViewed collects the profile URLs linked from the
// "People also viewed" aside, excluding the profile being scraped.
func ExtractAlsoViewed(doc *goquery.Document, ownURL string) []string {
	seen := dedup.NewSeen()
	seen.Add(ownURL)

	var urls []string
	doc.Find("a[href*='/in/']").Each(func(_ int, link *goquery.Selection) {
		href, ok := link.Attr("href")
		if !ok {
			return
		}
		url := linkurl.Normalize(href)
		if linkurl.IsProfileURL(url) && seen.Add(url) {
			urls = append(urls, url)
		}
	})
	return urls
}
