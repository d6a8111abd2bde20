package parsing

import "strings"

// Role is the semantic role assigned to one scraped token.
type Role string

const (
	RoleTitle          Role = "title"
	RoleOrganization   Role = "organization"
	RoleDateRange      Role = "date-range"
	RoleDuration       Role = "duration"
	RoleLocation       Role = "location"
	RoleEmploymentType Role = "employment-type"
	RoleUnknown        Role = "unknown"
)

// Classification is the result of classifying the ordered summary tokens of
// one list entry (one job or education entry). Fields left empty were not
// observed. FromDate/ToDate/Duration are parsed out of the date-range token.
type Classification struct {
	Title          string
	Organization   string
	DateRange      string
	FromDate       string
	ToDate         string
	Duration       string
	Location       string
	EmploymentType string
	Unknown        []string
}

// ClassifyTokens assigns each of 1-4 ordered tokens a semantic role.
//
// Content signals override position: a date-range token is a date range
// wherever it appears, and employment-type vocabulary beats the positional
// prior. Compound tokens ("Acme Corp · Contract") are split on separators
// and each part classified independently; the first non-empty classification
// per role is kept. The positional prior follows the date token: two tokens
// before the dates mean title then organization, one token means the entry
// has no separate title line and the leading token is the organization.
func ClassifyTokens(tokens []string) Classification {
	var c Classification

	dateIdx := -1
	for i, token := range tokens {
		if ContainsDateRange(strings.TrimSpace(token)) {
			dateIdx = i
			break
		}
	}

	titlePos, orgPos := -1, 0
	if dateIdx >= 2 {
		titlePos, orgPos = 0, 1
	}

	for i, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if i == dateIdx {
			c.DateRange = token
			wt := ParseWorkTimes(token)
			c.FromDate = wt.FromDate
			c.ToDate = wt.ToDate
			c.Duration = wt.Duration
			continue
		}

		c.classifyToken(token, i, titlePos, orgPos)
	}

	// A location carrying a stray date-like fragment ("Jan 2020, Remote")
	// indicates a misparsed token; discard rather than store bad data.
	if c.Location != "" && containsDateFragment(c.Location) {
		c.Location = ""
	}
	return c
}

// classifyToken classifies one non-date token, splitting compounds so that
// "Acme Corp · Contract" keeps the organization while extracting the
// employment type.
func (c *Classification) classifyToken(token string, position, titlePos, orgPos int) {
	parts := []string{token}
	for _, sep := range []string{"·", "•"} {
		if strings.Contains(token, sep) {
			parts = strings.Split(token, sep)
			break
		}
	}

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		switch classifyPart(part) {
		case RoleEmploymentType:
			if c.EmploymentType == "" {
				c.EmploymentType = ExtractEmploymentType(part)
			}
		case RoleLocation:
			if c.Location == "" {
				c.Location = part
			}
		default:
			c.assignByPosition(part, position, titlePos, orgPos)
		}
	}
}

// classifyPart applies the content tests in tie-break order: exact
// employment-type vocabulary first, then the geographic heuristic, then
// employment-type by containment. A part matching both the location
// heuristic and a non-exact employment signal is a location; the exact-match
// requirement keeps compound leftovers like "Contract · Remote" from being
// swallowed whole as an employment type.
func classifyPart(part string) Role {
	if IsEmploymentTypeExact(part) {
		return RoleEmploymentType
	}
	if hasLocationIndicator(part) {
		return RoleLocation
	}
	if IsEmploymentType(part) {
		return RoleEmploymentType
	}
	return RoleUnknown
}

func hasLocationIndicator(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, indicator := range locationIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// assignByPosition applies the positional prior for parts with no content
// signal.
func (c *Classification) assignByPosition(part string, position, titlePos, orgPos int) {
	switch {
	case position == titlePos && c.Title == "":
		c.Title = CleanSingleString(part)
	case position >= orgPos && c.Organization == "":
		c.Organization = part
	default:
		c.Unknown = append(c.Unknown, part)
	}
}

// containsDateFragment reports whether any separator-delimited part of text
// looks like a date or date range.
func containsDateFragment(text string) bool {
	for _, sep := range []string{"·", ","} {
		for _, part := range strings.Split(text, sep) {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if IsDateRange(part) || fromDateRe.MatchString(part) {
				return true
			}
		}
	}
	return false
}
