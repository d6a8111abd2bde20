package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTokens_ThreeTokenEntry(t *testing.T) {
	c := ClassifyTokens([]string{
		"Acme Corp · Contract",
		"Jan 2020 - Dec 2021 · 2 yrs",
		"Berlin, Germany",
	})

	assert.Equal(t, "Acme Corp", c.Organization)
	assert.Equal(t, "Contract", c.EmploymentType)
	assert.Equal(t, "Jan 2020", c.FromDate)
	assert.Equal(t, "Dec 2021", c.ToDate)
	assert.Equal(t, "2 yrs", c.Duration)
	assert.Equal(t, "Berlin, Germany", c.Location)
	assert.Empty(t, c.Title)
}

func TestClassifyTokens_FourTokenEntry(t *testing.T) {
	c := ClassifyTokens([]string{
		"Senior Engineer",
		"Acme Corp",
		"Oct 2024 - Present · 10 mos",
		"Frankfurt Rhine-Main Metropolitan Area",
	})

	assert.Equal(t, "Senior Engineer", c.Title)
	assert.Equal(t, "Acme Corp", c.Organization)
	assert.Equal(t, "Oct 2024", c.FromDate)
	assert.Equal(t, "Present", c.ToDate)
	assert.Equal(t, "Frankfurt Rhine-Main Metropolitan Area", c.Location)
}

func TestClassifyTokens_EmploymentTypeInFourthSlot(t *testing.T) {
	c := ClassifyTokens([]string{
		"Designer",
		"Studio X",
		"2020 - 2023 · 3 yrs",
		"Freelance",
	})

	assert.Equal(t, "Freelance", c.EmploymentType)
	assert.Empty(t, c.Location)
}

func TestClassifyTokens_DuplicatedTitleLine(t *testing.T) {
	// Screen-reader duplication inside one token.
	c := ClassifyTokens([]string{
		"Manager\nManager",
		"Acme Corp",
		"2019 - 2021",
	})

	assert.Equal(t, "Manager", c.Title)
	assert.Equal(t, "Acme Corp", c.Organization)
}

func TestClassifyTokens_CompoundEmploymentAndLocation(t *testing.T) {
	// Non-exact compound resolves to location; the split parts still win
	// their individual roles.
	c := ClassifyTokens([]string{
		"Acme Corp",
		"2020 - 2022",
		"Contract · Remote",
	})

	assert.Equal(t, "Contract", c.EmploymentType)
	assert.Equal(t, "Remote", c.Location)
}

func TestClassifyTokens_LocationWithStrayDateDiscarded(t *testing.T) {
	c := ClassifyTokens([]string{
		"Acme Corp",
		"2020 - 2022",
		"Jan 2020, Remote",
	})

	assert.Empty(t, c.Location, "date-contaminated location must be discarded")
}

func TestClassifyTokens_NoDateToken(t *testing.T) {
	c := ClassifyTokens([]string{"Acme Corp", "Linz, Upper Austria"})

	assert.Equal(t, "Acme Corp", c.Organization)
	assert.Equal(t, "Linz, Upper Austria", c.Location)
	assert.Empty(t, c.DateRange)
}

func TestClassifyTokens_Deterministic(t *testing.T) {
	tokens := []string{
		"Acme Corp · Contract",
		"Jan 2020 - Dec 2021 · 2 yrs",
		"Berlin, Germany",
	}
	first := ClassifyTokens(tokens)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ClassifyTokens(tokens))
	}
}

func TestIsEmploymentType(t *testing.T) {
	assert.True(t, IsEmploymentType("Freelance"))
	assert.True(t, IsEmploymentType("Full-time"))
	assert.True(t, IsEmploymentType("casual / on-call"))
	assert.True(t, IsEmploymentType("Acme · Contract"))
	assert.False(t, IsEmploymentType("Linz, Upper Austria"))
	assert.False(t, IsEmploymentType(""))
}

func TestExtractEmploymentType(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Company Name · Freelance", "Freelance"},
		{"Full-time", "Full-time"},
		{"Contract, Remote", "Contract"},
		{"Linz, Upper Austria", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractEmploymentType(tt.text), "text %q", tt.text)
	}
}

func TestIsGeographicLocation(t *testing.T) {
	assert.True(t, IsGeographicLocation("Linz, Upper Austria"))
	assert.True(t, IsGeographicLocation("Frankfurt Rhine-Main Metropolitan Area"))
	assert.True(t, IsGeographicLocation("Remote"))
	assert.False(t, IsGeographicLocation("Freelance"))
	assert.False(t, IsGeographicLocation(""))
}
