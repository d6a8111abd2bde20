package company

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/linkedin-scraper/internal/browser"
	"github.com/jonathan/linkedin-scraper/internal/linkurl"
	"github.com/jonathan/linkedin-scraper/internal/scrape"
	"github.com/jonathan/linkedin-scraper/internal/types"
)

// employeeListSelector matches one search-result row on the employee
// search page.
const employeeListSelector = "main [role='list'] > li"

// nextPageSelector matches the enabled pagination control.
const nextPageSelector = "button[aria-label='Next']:not([disabled])"

var viewProfileRe = regexp.MustCompile(`View (.+?)'s profile`)

// scrapeEmployees walks the employee search results behind the "employees"
// link of the people page, bounded by the page budget. Per-item extraction
// failures are recorded under item-indexed keys; they never stop the walk.
func (s *Scraper) scrapeEmployees(ctx context.Context, c *types.Company, budget int) error {
	peopleURL := c.LinkedInURL + "/people"
	if err := s.page.Navigate(ctx, peopleURL); err != nil {
		return &browser.NavigationError{URL: peopleURL, Cause: err}
	}
	browser.Pause(ctx, settleLong)

	// The people page links to the search results that actually list
	// employees; a restricted view has no such link and yields no employees.
	if err := s.clickEmployeesLink(ctx); err != nil {
		return nil
	}
	browser.Pause(ctx, settleLong)

	if loc, err := s.page.Location(ctx); err != nil || !strings.Contains(loc, "/search/results/people") {
		return nil
	}

	src := &employeeSource{page: s.page}
	result, err := scrape.NewCollector[types.Employee](budget).Run(ctx, src)
	for _, e := range result.Entries {
		c.AddEmployee(e)
	}
	for _, itemErr := range src.itemErrs {
		c.RecordError(itemErr.Key(), itemErr)
	}
	s.logf("company: employees %s after %d pages, %d entries", result.State, result.Pages, len(result.Entries))
	return err
}

// clickEmployeesLink clicks the "N employees" link on the people page. The
// anchor has no stable class; it is found by text.
func (s *Scraper) clickEmployeesLink(ctx context.Context) error {
	var found bool
	expr := `(() => {
		const links = Array.from(document.querySelectorAll('a'));
		const link = links.find(a => a.innerText && a.innerText.includes('employees'));
		if (!link) return false;
		link.click();
		return true;
	})()`
	if err := s.page.Evaluate(ctx, expr, &found); err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no employees link on people page")
	}
	return nil
}

// employeeSource feeds the collector from the live employee search page.
type employeeSource struct {
	page     browser.Page
	itemErrs []*scrape.ItemError
	offset   int
}

func (s *employeeSource) LoadList(ctx context.Context) error {
	return s.page.WaitVisible(ctx, employeeListSelector)
}

func (s *employeeSource) Entries(ctx context.Context) ([]scrape.Item[types.Employee], error) {
	html, err := s.page.OuterHTML(ctx, "main")
	if err != nil {
		return nil, err
	}
	doc, err := scrape.ParseSectionHTML(html)
	if err != nil {
		return nil, err
	}

	items, errs := ExtractEmployees(doc, s.offset)
	s.itemErrs = append(s.itemErrs, errs...)
	s.offset += doc.Find("[role='list'] > li").Length()
	return items, nil
}

func (s *employeeSource) Advance(ctx context.Context) (bool, error) {
	if err := s.page.Click(ctx, nextPageSelector); err != nil {
		return false, nil
	}
	browser.Pause(ctx, settleLong)
	if err := s.page.WaitVisible(ctx, employeeListSelector); err != nil {
		return false, nil
	}
	return true, nil
}

// ExtractEmployees parses the visible employee search results. offset
// numbers the item-error keys continuously across pages. Rows without a
// profile link (ads, upsells) are skipped silently; rows with a profile
// link but no recoverable name produce an item error.
func ExtractEmployees(doc *goquery.Document, offset int) ([]scrape.Item[types.Employee], []*scrape.ItemError) {
	var items []scrape.Item[types.Employee]
	var errs []*scrape.ItemError

	doc.Find("[role='list'] > li").Each(func(i int, row *goquery.Selection) {
		link := row.Find("a[href*='/in/']").First()
		if link.Length() == 0 {
			return
		}
		href, _ := link.Attr("href")
		if href == "" {
			return
		}

		name := employeeName(row)
		if name == "" {
			errs = append(errs, &scrape.ItemError{
				Section: "employee_extraction",
				Index:   offset + i,
				Cause:   fmt.Errorf("profile link without a recoverable name"),
			})
			return
		}

		url := linkurl.Normalize(href)
		items = append(items, scrape.Item[types.Employee]{
			URL: url,
			Value: types.Employee{
				Name:        name,
				Designation: employeeDesignation(row, name),
				LinkedInURL: url,
			},
		})
	})
	return items, errs
}

// employeeName recovers the row's display name, unwrapping the
// "View X's profile" accessibility phrasing.
func employeeName(row *goquery.Selection) string {
	name := strings.TrimSpace(row.Find("span[aria-hidden='true']").First().Text())
	if name == "" {
		// Fall back to the first plausible text line of the row.
		for _, line := range strings.Split(row.Text(), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			lower := strings.ToLower(line)
			if strings.Contains(lower, "connect") || strings.Contains(lower, "message") ||
				strings.Contains(lower, "follow") || strings.Contains(lower, "degree") {
				continue
			}
			name = line
			break
		}
	}
	if m := viewProfileRe.FindStringSubmatch(name); m != nil {
		name = m[1]
	}
	return name
}

// employeeDesignation reads the row's title line, trimming trailing
// "at Company" noise when present.
func employeeDesignation(row *goquery.Selection, name string) string {
	designation := strings.TrimSpace(row.Find("div.t-14.t-black.t-normal").First().Text())
	if designation == "" || designation == name {
		return ""
	}
	if i := strings.Index(designation, " at "); i > 0 {
		designation = designation[:i]
	}
	return strings.TrimSpace(designation)
}
