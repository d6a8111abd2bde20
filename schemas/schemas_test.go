package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/linkedin-scraper/internal/schemas"
	"github.com/jonathan/linkedin-scraper/internal/types"
)

var schemaFiles = []string{
	"person.schema.json",
	"company.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			err = json.Unmarshal(data, &schemaObj)
			require.NoError(t, err)

			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]
			_, hasProps := schemaObj["properties"]
			assert.True(t, hasType && hasSchema && hasProps,
				"schema should declare $schema, type, and properties")
		})
	}
}

func TestPersonSchema_AcceptsScrapedAggregate(t *testing.T) {
	person := types.NewPerson("https://www.linkedin.com/in/jane-doe")
	person.Name = "Jane Doe"
	person.Headline = "Staff Engineer"
	person.About = []string{"Engineer.", "Speaker."}
	person.OpenToWork = true
	person.AddExperience(types.Experience{
		Institution: types.Institution{
			InstitutionName: "Globex",
			LinkedInURL:     "https://www.linkedin.com/company/globex",
		},
		PositionTitle:  "Staff Engineer",
		FromDate:       "Jan 2020",
		ToDate:         "Present",
		EmploymentType: "Full-time",
		Skills:         []string{"Go"},
	})
	person.AddEducation(types.Education{
		Institution: types.Institution{InstitutionName: "MIT"},
		Degree:      "B.Sc. Computer Science",
	})
	person.AddInterest(types.Interest{Name: "Globex", Type: types.InterestCompany})
	person.AddHonor(types.Honor{Title: "Dean's List", Issuer: "MIT"})
	person.AddLanguage(types.Language{Name: "German", Proficiency: "Native"})
	person.AddConnection(types.Connection{Name: "Max Power"})
	person.ConnectionCount = 500
	person.ContactInfo = &types.ContactInfo{Email: "jane@example.com"}
	person.RecordError("interests", os.ErrDeadlineExceeded)

	data, err := json.Marshal(person)
	require.NoError(t, err)

	err = schemas.ValidateBytes("person.schema.json", data)
	assert.NoError(t, err)
}

func TestPersonSchema_RejectsUnknownField(t *testing.T) {
	doc := `{"name": "Jane Doe", "follower_count": 10}`

	err := schemas.ValidateBytes("person.schema.json", []byte(doc))
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestPersonSchema_RejectsBadInterestType(t *testing.T) {
	doc := `{"interests": [{"name": "Globex", "type": "conglomerate"}]}`

	err := schemas.ValidateBytes("person.schema.json", []byte(doc))
	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestCompanySchema_AcceptsScrapedAggregate(t *testing.T) {
	company := types.NewCompany("https://www.linkedin.com/company/globex")
	company.Name = "Globex Corporation"
	company.AboutUs = "We make widgets."
	company.Website = "https://globex.example.com"
	company.Headquarters = "Springfield, USA"
	company.Industry = "Software Development"
	company.CompanySize = "10,001+ employees"
	company.Founded = 1989
	company.Specialties = []string{"widgets", "infrastructure"}
	company.Headcount = 12345
	company.AddShowcasePage(types.CompanySummary{
		Name:        "Globex Cloud",
		LinkedInURL: "https://www.linkedin.com/company/globex-cloud",
		Followers:   "1,234 followers",
	})
	company.AddEmployee(types.Employee{
		Name:        "Max Power",
		Designation: "SRE",
		LinkedInURL: "https://www.linkedin.com/in/max-power",
	})
	company.AddFollower(types.Follower{
		Name:        "Jane Doe",
		Headline:    "Staff Engineer at Initech",
		LinkedInURL: "https://www.linkedin.com/in/jane-doe",
	})
	company.RecordError("employees", os.ErrDeadlineExceeded)

	data, err := json.Marshal(company)
	require.NoError(t, err)

	err = schemas.ValidateBytes("company.schema.json", data)
	assert.NoError(t, err)
}

func TestCompanySchema_RejectsImplausibleFounded(t *testing.T) {
	doc := `{"name": "Globex", "founded": 89}`

	err := schemas.ValidateBytes("company.schema.json", []byte(doc))
	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
}
