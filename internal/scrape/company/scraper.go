// Package company scrapes company pages: the about grid, affiliated pages,
// the paginated employee listing and the followers modal, orchestrated with
// partial-failure isolation.
package company

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jonathan/linkedin-scraper/internal/browser"
	"github.com/jonathan/linkedin-scraper/internal/config"
	"github.com/jonathan/linkedin-scraper/internal/linkurl"
	"github.com/jonathan/linkedin-scraper/internal/scrape"
	"github.com/jonathan/linkedin-scraper/internal/types"
)

const (
	settleLong  = 2 * time.Second
	settleShort = 1 * time.Second
)

// Section names used as keys in the aggregate's error map.
const (
	sectionAbout      = "about"
	sectionAffiliated = "affiliated_pages"
	sectionEmployees  = "employees"
	sectionFollowers  = "followers"
)

// Scraper scrapes company pages through an authenticated page.
type Scraper struct {
	page    browser.Page
	verbose bool
}

// NewScraper creates a company page scraper on the given page.
func NewScraper(page browser.Page, verbose bool) *Scraper {
	return &Scraper{page: page, verbose: verbose}
}

func (s *Scraper) logf(format string, args ...any) {
	if s.verbose {
		log.Printf("[SCRAPE] "+format, args...)
	}
}

// Scrape visits the company at url and populates a Company aggregate with
// the requested sections. budget bounds the employee and follower pagination;
// zero skips both entirely. Section failures are recorded in the aggregate's
// error map; only an invalid URL or failed initial navigation is returned
// as an error.
func (s *Scraper) Scrape(ctx context.Context, url string, fields config.CompanyFields, budget int) (*types.Company, error) {
	if !linkurl.IsLinkedInURL(url) {
		return nil, fmt.Errorf("not a company URL: %s", url)
	}
	companyURL := linkurl.Normalize(url)

	aboutURL := companyURL + "/about"
	if err := s.page.Navigate(ctx, aboutURL); err != nil {
		return nil, fmt.Errorf("initial navigation: %w", err)
	}
	browser.Pause(ctx, settleLong)

	c := types.NewCompany(companyURL)

	s.logf("company: about")
	c.RecordError(sectionAbout, s.scrapeAbout(ctx, c))

	if fields.Has(config.CompanyAffiliated) && ctx.Err() == nil {
		s.logf("company: affiliated pages")
		c.RecordError(sectionAffiliated, s.scrapeAffiliated(ctx, c))
	}

	if fields.Has(config.CompanyEmployees) && budget > 0 && ctx.Err() == nil {
		s.logf("company: employees (budget %d pages)", budget)
		c.RecordError(sectionEmployees, s.scrapeEmployees(ctx, c, budget))
	}

	if fields.Has(config.CompanyFollowers) && budget > 0 && ctx.Err() == nil {
		s.logf("company: followers (budget %d pages)", budget)
		c.RecordError(sectionFollowers, s.scrapeFollowers(ctx, c, budget))
	}

	return c, nil
}

// scrapeAbout pulls the about page's main content and fills the flat
// company fields.
func (s *Scraper) scrapeAbout(ctx context.Context, c *types.Company) error {
	html, err := s.page.OuterHTML(ctx, "main")
	if err != nil {
		return err
	}
	doc, err := scrape.ParseSectionHTML(html)
	if err != nil {
		return err
	}
	ExtractAbout(doc, c)
	return nil
}

// scrapeAffiliated parses the unified "Affiliated pages" section, expanding
// it first when a show-all control is present.
func (s *Scraper) scrapeAffiliated(ctx context.Context, c *types.Company) error {
	// Best effort: the section renders collapsed on wide pages.
	if err := s.page.Click(ctx, "button[aria-label*='affiliated' i]"); err == nil {
		browser.Pause(ctx, settleShort)
	}

	html, err := s.page.OuterHTML(ctx, "main")
	if err != nil {
		return err
	}
	doc, err := scrape.ParseSectionHTML(html)
	if err != nil {
		return err
	}

	showcase, affiliated := ExtractAffiliatedPages(doc)
	for _, p := range showcase {
		c.AddShowcasePage(p)
	}
	for _, p := range affiliated {
		c.AddAffiliatedCompany(p)
	}
	return nil
}
