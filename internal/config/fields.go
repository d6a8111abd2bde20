package config

import (
	"fmt"
	"strings"
)

// PersonFields is a bitmask selecting which profile sections a person scrape
// visits. Each extra section costs at least one page navigation, so callers
// pick the smallest set that serves them.
type PersonFields uint

const (
	// PersonBasicInfo covers name, headline, location, about and the
	// open-to-work flag, all read from the main profile page.
	PersonBasicInfo PersonFields = 1 << iota
	// PersonExperience covers work history from the experience details page.
	PersonExperience
	// PersonEducation covers education history from the education details page.
	PersonEducation
	// PersonInterests covers followed companies, people, groups and schools.
	PersonInterests
	// PersonAccomplishments covers honors, awards and languages.
	PersonAccomplishments
	// PersonContacts covers contact info, connection count and connections.
	PersonContacts
)

// Presets for common use cases.
const (
	PersonMinimal = PersonBasicInfo
	PersonCareer  = PersonBasicInfo | PersonExperience | PersonEducation
	PersonAll     = PersonBasicInfo | PersonExperience | PersonEducation |
		PersonInterests | PersonAccomplishments | PersonContacts
)

// Has reports whether all bits of f2 are set in f.
func (f PersonFields) Has(f2 PersonFields) bool {
	return f&f2 == f2
}

var personFieldNames = map[string]PersonFields{
	"basic":           PersonBasicInfo,
	"experience":      PersonExperience,
	"education":       PersonEducation,
	"interests":       PersonInterests,
	"accomplishments": PersonAccomplishments,
	"contacts":        PersonContacts,
	"minimal":         PersonMinimal,
	"career":          PersonCareer,
	"all":             PersonAll,
}

// ParsePersonFields parses a comma-separated field list such as
// "basic,experience" into a bitmask. Preset names (minimal, career, all)
// are accepted alongside individual sections. An empty string yields the
// minimal preset.
func ParsePersonFields(s string) (PersonFields, error) {
	if strings.TrimSpace(s) == "" {
		return PersonMinimal, nil
	}
	var fields PersonFields
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		f, ok := personFieldNames[name]
		if !ok {
			return 0, fmt.Errorf("unknown person field %q", name)
		}
		fields |= f
	}
	return fields, nil
}

// CompanyFields is a bitmask selecting which company sections a scrape
// visits. The about page is always read; the bits toggle the sections that
// need extra navigation.
type CompanyFields uint

const (
	// CompanyAbout covers the overview paragraph and the dt/dd details grid.
	CompanyAbout CompanyFields = 1 << iota
	// CompanyAffiliated covers showcase pages and affiliated companies.
	CompanyAffiliated
	// CompanyEmployees covers the paginated employee listing.
	CompanyEmployees
	// CompanyFollowers covers the in-network followers modal.
	CompanyFollowers
)

// Presets for common use cases.
const (
	CompanyMinimal = CompanyAbout
	CompanyAll     = CompanyAbout | CompanyAffiliated | CompanyEmployees | CompanyFollowers
)

// Has reports whether all bits of f2 are set in f.
func (f CompanyFields) Has(f2 CompanyFields) bool {
	return f&f2 == f2
}

var companyFieldNames = map[string]CompanyFields{
	"about":      CompanyAbout,
	"affiliated": CompanyAffiliated,
	"employees":  CompanyEmployees,
	"followers":  CompanyFollowers,
	"minimal":    CompanyMinimal,
	"all":        CompanyAll,
}

// ParseCompanyFields parses a comma-separated company field list into a
// bitmask. An empty string yields the minimal preset.
func ParseCompanyFields(s string) (CompanyFields, error) {
	if strings.TrimSpace(s) == "" {
		return CompanyMinimal, nil
	}
	var fields CompanyFields
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		f, ok := companyFieldNames[name]
		if !ok {
			return 0, fmt.Errorf("unknown company field %q", name)
		}
		fields |= f
	}
	return fields, nil
}
