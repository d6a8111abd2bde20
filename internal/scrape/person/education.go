package person

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/linkedin-scraper/internal/linkurl"
	"github.com/jonathan/linkedin-scraper/internal/parsing"
	"github.com/jonathan/linkedin-scraper/internal/scrape"
	"github.com/jonathan/linkedin-scraper/internal/types"
)

func (s *Scraper) scrapeEducations(ctx context.Context, p *types.Person) error {
	doc, err := s.loadDetailsSection(ctx, p.LinkedInURL, "education")
	if err != nil || doc == nil {
		return err
	}
	for _, e := range ExtractEducations(doc) {
		p.AddEducation(e)
	}
	return nil
}

// ExtractEducations walks the paged education list. The summary tokens of
// an education entry are institution first, then degree and date range in
// either order; the date-range regex decides which is which.
func ExtractEducations(doc *goquery.Document) []types.Education {
	container := doc.Find(scrape.ListContainerSelector).First()
	if container.Length() == 0 {
		return nil
	}

	var educations []types.Education
	for _, entry := range scrape.ListEntries(container) {
		logo, details, ok := scrape.EntityParts(entry)
		if !ok {
			continue
		}

		tokens := scrape.SummaryTokens(details)
		if len(tokens) == 0 {
			continue
		}

		e := types.Education{
			Institution: types.Institution{
				InstitutionName: cleanLine(tokens[0]),
				LinkedInURL:     linkurl.Normalize(scrape.FirstHref(logo)),
			},
		}
		for _, token := range tokens[1:] {
			switch {
			case parsing.IsDateRange(token) && e.FromDate == "":
				e.FromDate, e.ToDate = parsing.ParseDateRange(token)
			case !parsing.IsDateRange(token) && e.Degree == "":
				e.Degree = cleanLine(token)
			}
		}

		e.Description, e.Skills = scrape.DescriptionAndSkills(scrape.SummaryTextBlock(details))
		educations = append(educations, e)
	}
	return educations
}
