package person

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/linkedin-scraper/internal/linkurl"
	"github.com/jonathan/linkedin-scraper/internal/parsing"
	"github.com/jonathan/linkedin-scraper/internal/scrape"
	"github.com/jonathan/linkedin-scraper/internal/types"
)

func (s *Scraper) scrapeExperiences(ctx context.Context, p *types.Person) error {
	doc, err := s.loadDetailsSection(ctx, p.LinkedInURL, "experience")
	if err != nil || doc == nil {
		return err
	}
	for _, e := range ExtractExperiences(doc) {
		p.AddExperience(e)
	}
	return nil
}

// ExtractExperiences walks the paged work-history list and produces one
// Experience per position. An entry grouping several positions under one
// organization yields one Experience per nested position, all sharing the
// organization name and URL. Entries without an entity container or a
// company link are skipped.
func ExtractExperiences(doc *goquery.Document) []types.Experience {
	container := doc.Find(scrape.ListContainerSelector).First()
	if container.Length() == 0 {
		return nil
	}

	var experiences []types.Experience
	for _, entry := range scrape.ListEntries(container) {
		logo, details, ok := scrape.EntityParts(entry)
		if !ok {
			continue
		}
		companyURL := scrape.FirstHref(logo)
		if companyURL == "" {
			continue
		}

		cls := parsing.ClassifyTokens(scrape.SummaryTokens(details))
		institution := types.Institution{
			InstitutionName: cls.Organization,
			LinkedInURL:     linkurl.Normalize(companyURL),
		}

		block := scrape.SummaryTextBlock(details)
		nested := scrape.NestedEntries(block)
		if len(nested) > 1 {
			for _, pos := range nested {
				if e, ok := extractNestedPosition(pos, institution); ok {
					experiences = append(experiences, e)
				}
			}
			continue
		}

		description, skills := scrape.DescriptionAndSkills(block)
		experiences = append(experiences, types.Experience{
			Institution:    institution,
			PositionTitle:  cls.Title,
			FromDate:       cls.FromDate,
			ToDate:         cls.ToDate,
			Duration:       cls.Duration,
			Location:       cls.Location,
			EmploymentType: cls.EmploymentType,
			Description:    description,
			Skills:         skills,
		})
	}
	return experiences
}

// extractNestedPosition reads one position from a multi-position entry. The
// nested layout always leads with the title; the remaining lines are
// classified by content since their order varies.
func extractNestedPosition(pos *goquery.Selection, institution types.Institution) (types.Experience, bool) {
	link := pos.Find("a").First()
	if link.Length() == 0 {
		return types.Experience{}, false
	}
	lines := link.Children()
	if lines.Length() < 2 {
		return types.Experience{}, false
	}

	e := types.Experience{
		Institution:   institution,
		PositionTitle: cleanLine(scrape.VisibleText(lines.Eq(0))),
	}

	for i := 1; i < lines.Length(); i++ {
		text := scrape.VisibleText(lines.Eq(i))
		if text == "" {
			continue
		}
		switch {
		case hasDatePart(text) && e.FromDate == "":
			wt := parsing.ParseWorkTimes(text)
			e.FromDate = wt.FromDate
			e.ToDate = wt.ToDate
			e.Duration = wt.Duration
		case parsing.IsEmploymentType(text) && e.EmploymentType == "":
			e.EmploymentType = parsing.ExtractEmploymentType(text)
		case parsing.IsGeographicLocation(text) && e.Location == "":
			e.Location = text
		case e.Location == "" && e.EmploymentType == "":
			e.Location = text
		}
	}

	e.Description, e.Skills = scrape.DescriptionAndSkills(pos)
	return e, true
}

// hasDatePart reports whether any ·-separated part of text is a date range.
func hasDatePart(text string) bool {
	for _, part := range strings.Split(text, "·") {
		if parsing.IsDateRange(strings.TrimSpace(part)) {
			return true
		}
	}
	return false
}
