package company

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/linkedin-scraper/internal/linkurl"
	"github.com/jonathan/linkedin-scraper/internal/parsing"
	"github.com/jonathan/linkedin-scraper/internal/types"
)

var foundedRe = regexp.MustCompile(`^\d{4}$`)

// ExtractAbout fills the flat company fields from the about page: name from
// the h1, the overview paragraph, and the dt/dd details grid. A dt may be
// followed by several dd siblings (company size carries employee count and
// associated members); only the first is the field value.
func ExtractAbout(doc *goquery.Document, c *types.Company) {
	if name := cleanLine(doc.Find("h1").First().Text()); name != "" {
		c.Name = name
	}

	doc.Find("h2").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if !strings.Contains(h.Text(), "Overview") {
			return true
		}
		if p := h.NextAllFiltered("p").First(); p.Length() > 0 {
			c.AboutUs = strings.TrimSpace(parsing.CleanText(p.Text()))
		}
		return false
	})

	doc.Find("dt").Each(func(_ int, dt *goquery.Selection) {
		values := ddValues(dt)
		if len(values) == 0 {
			return
		}
		applyDetail(c, strings.TrimSpace(dt.Text()), values)
	})

	// The "See all N employees" link is the most reliable headcount source.
	doc.Find("a").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		text := link.Text()
		if !strings.Contains(text, "employees on LinkedIn") {
			return true
		}
		if n := linkurl.ExtractCount(text); n > 0 {
			c.Headcount = n
		}
		return false
	})
}

// ddValues collects the dd siblings following dt up to the next dt.
func ddValues(dt *goquery.Selection) []string {
	var values []string
	dt.NextUntil("dt").Each(func(_ int, sib *goquery.Selection) {
		if goquery.NodeName(sib) != "dd" {
			return
		}
		if text := strings.TrimSpace(parsing.CleanText(sib.Text())); text != "" {
			values = append(values, text)
		}
	})
	return values
}

func applyDetail(c *types.Company, label string, values []string) {
	value := values[0]
	switch label {
	case "Website":
		c.Website = value
	case "Industry":
		c.Industry = value
	case "Company size":
		c.CompanySize = value
		if n := linkurl.ExpandKNotation(value); n > 0 && c.Headcount == 0 {
			c.Headcount = n
		}
	case "Headquarters":
		c.Headquarters = value
	case "Founded":
		if foundedRe.MatchString(value) {
			c.Founded = linkurl.ExtractCount(value)
		}
	case "Specialties":
		for _, s := range strings.Split(value, ",") {
			if s = strings.TrimSpace(s); s != "" {
				c.Specialties = append(c.Specialties, s)
			}
		}
	}
}

func cleanLine(s string) string {
	return parsing.CleanSingleString(strings.TrimSpace(s))
}
