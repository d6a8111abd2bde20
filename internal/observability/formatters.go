// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/linkedin-scraper/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPersonSummary outputs a human-readable summary of a scraped profile.
func (p *Printer) PrintPersonSummary(person *types.Person) {
	if person == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", person.Name))
	if person.Headline != "" {
		sb.WriteString(fmt.Sprintf("Headline: %s\n", person.Headline))
	}
	if person.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", person.Location))
	}
	if company := person.CurrentCompany(); company != "" {
		sb.WriteString(fmt.Sprintf("Current:  %s", company))
		if title := person.CurrentJobTitle(); title != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", title))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if len(person.Experiences) > 0 {
		sb.WriteString(fmt.Sprintf("Experiences: %d\n", len(person.Experiences)))
		count := min(len(person.Experiences), maxItemsToShow)
		for i := 0; i < count; i++ {
			e := person.Experiences[i]
			sb.WriteString(fmt.Sprintf("  • %s", e.InstitutionName))
			if e.PositionTitle != "" {
				sb.WriteString(fmt.Sprintf(" — %s", e.PositionTitle))
			}
			sb.WriteString("\n")
		}
		if len(person.Experiences) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(person.Experiences)-maxItemsToShow))
		}
	}

	if len(person.Educations) > 0 {
		sb.WriteString(fmt.Sprintf("Educations: %d\n", len(person.Educations)))
	}
	if len(person.Interests) > 0 {
		sb.WriteString(fmt.Sprintf("Interests: %d\n", len(person.Interests)))
	}
	if len(person.Honors) > 0 || len(person.Languages) > 0 {
		sb.WriteString(fmt.Sprintf("Honors: %d  Languages: %d\n", len(person.Honors), len(person.Languages)))
	}
	if person.ConnectionCount > 0 {
		sb.WriteString(fmt.Sprintf("Connections: %d\n", person.ConnectionCount))
	}

	p.printBox("SCRAPED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
	p.printScrapingErrors(person.ScrapingErrors)
}

// PrintCompanySummary outputs a human-readable summary of a scraped company.
func (p *Printer) PrintCompanySummary(company *types.Company) {
	if company == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", company.Name))
	if company.Industry != "" {
		sb.WriteString(fmt.Sprintf("Industry: %s\n", company.Industry))
	}
	if company.Headquarters != "" {
		sb.WriteString(fmt.Sprintf("HQ:       %s\n", company.Headquarters))
	}
	if company.CompanySize != "" {
		sb.WriteString(fmt.Sprintf("Size:     %s", company.CompanySize))
		if company.Headcount > 0 {
			sb.WriteString(fmt.Sprintf(" (~%d)", company.Headcount))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if len(company.Specialties) > 0 {
		specialties := strings.Join(company.Specialties, ", ")
		if len(specialties) > 45 {
			specialties = specialties[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Specialties: %s\n", specialties))
	}
	if len(company.ShowcasePages) > 0 || len(company.AffiliatedCompanies) > 0 {
		sb.WriteString(fmt.Sprintf("Showcase pages: %d  Affiliated: %d\n",
			len(company.ShowcasePages), len(company.AffiliatedCompanies)))
	}
	if len(company.Employees) > 0 {
		sb.WriteString(fmt.Sprintf("Employees collected: %d\n", len(company.Employees)))
		count := min(len(company.Employees), maxItemsToShow)
		for i := 0; i < count; i++ {
			e := company.Employees[i]
			sb.WriteString(fmt.Sprintf("  • %s", e.Name))
			if e.Designation != "" {
				sb.WriteString(fmt.Sprintf(" — %s", e.Designation))
			}
			sb.WriteString("\n")
		}
		if len(company.Employees) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(company.Employees)-maxItemsToShow))
		}
	}
	if len(company.Followers) > 0 {
		sb.WriteString(fmt.Sprintf("Followers collected: %d\n", len(company.Followers)))
	}

	p.printBox("SCRAPED COMPANY", strings.TrimSuffix(sb.String(), "\n"))
	p.printScrapingErrors(company.ScrapingErrors)
}

// printScrapingErrors outputs the per-section error map, sorted by key.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printScrapingErrors(errs map[string]string) {
	if len(errs) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL SECTIONS SCRAPED CLEANLY")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d section errors:\n\n", len(errs)))
	for i, k := range keys {
		details := errs[k]
		if len(details) > 45 {
			details = details[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", k))
		sb.WriteString(fmt.Sprintf("  %s\n", details))
		if i < len(keys)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SECTION ERRORS", sb.String())
}
