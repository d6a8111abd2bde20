package types

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompany(t *testing.T) {
	c := NewCompany("https://www.linkedin.com/company/globex")

	assert.Equal(t, "https://www.linkedin.com/company/globex", c.LinkedInURL)
	assert.NotNil(t, c.ScrapingErrors)
}

func TestCompany_AddEntries(t *testing.T) {
	c := NewCompany("https://www.linkedin.com/company/globex")

	c.AddEmployee(Employee{Name: "Max Power"})
	c.AddFollower(Follower{Name: "Jane Doe"})
	c.AddShowcasePage(CompanySummary{Name: "Globex Cloud"})
	c.AddAffiliatedCompany(CompanySummary{Name: "Globex Labs"})

	assert.Len(t, c.Employees, 1)
	assert.Len(t, c.Followers, 1)
	assert.Len(t, c.ShowcasePages, 1)
	assert.Len(t, c.AffiliatedCompanies, 1)
}

func TestCompany_RecordError(t *testing.T) {
	c := NewCompany("https://www.linkedin.com/company/globex")

	c.RecordError("employees", errors.New("pagination stalled"))
	c.RecordError("about", nil)

	assert.Equal(t, map[string]string{"employees": "pagination stalled"}, c.ScrapingErrors)
}

func TestCompany_JSONOmitsEmptySections(t *testing.T) {
	c := NewCompany("https://www.linkedin.com/company/globex")
	c.Name = "Globex Corporation"

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Contains(t, raw, "name")
	assert.NotContains(t, raw, "employees")
	assert.NotContains(t, raw, "founded")
	assert.NotContains(t, raw, "scraping_errors")
}
