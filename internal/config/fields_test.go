package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePersonFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  PersonFields
	}{
		{"empty defaults to minimal", "", PersonMinimal},
		{"single field", "experience", PersonExperience},
		{"comma separated", "basic,experience,education", PersonCareer},
		{"spaces and case ignored", " Basic , EXPERIENCE ", PersonBasicInfo | PersonExperience},
		{"preset name", "career", PersonCareer},
		{"all preset", "all", PersonAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePersonFields(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePersonFields_Unknown(t *testing.T) {
	_, err := ParsePersonFields("basic,nonsense")
	assert.Error(t, err)
}

func TestPersonFields_Has(t *testing.T) {
	assert.True(t, PersonCareer.Has(PersonExperience))
	assert.True(t, PersonCareer.Has(PersonBasicInfo|PersonEducation))
	assert.False(t, PersonCareer.Has(PersonContacts))
	assert.True(t, PersonAll.Has(PersonCareer))
}

func TestParseCompanyFields(t *testing.T) {
	got, err := ParseCompanyFields("about,employees")
	require.NoError(t, err)
	assert.Equal(t, CompanyAbout|CompanyEmployees, got)

	got, err = ParseCompanyFields("followers")
	require.NoError(t, err)
	assert.Equal(t, CompanyFollowers, got)

	got, err = ParseCompanyFields("")
	require.NoError(t, err)
	assert.Equal(t, CompanyMinimal, got)

	_, err = ParseCompanyFields("shareholders")
	assert.Error(t, err)
}
