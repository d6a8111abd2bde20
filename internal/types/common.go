// Package types defines the typed records assembled by a scrape: the Person
// and Company aggregates and the entry records appended to them.
package types

// ContactInfo holds contact details pulled from the profile's contact-info overlay.
type ContactInfo struct {
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Website     string `json:"website,omitempty"`
	LinkedInURL string `json:"linkedin_url,omitempty"`
}

// IsEmpty reports whether no contact field was observed.
func (c ContactInfo) IsEmpty() bool {
	return c.Email == "" && c.Phone == "" && c.Website == "" && c.LinkedInURL == ""
}

// Institution is the minimal name+URL shape shared by Experience and Education.
// LinkedInURL is stored in canonical form (see linkurl.Normalize).
type Institution struct {
	InstitutionName string `json:"institution_name,omitempty"`
	LinkedInURL     string `json:"linkedin_url,omitempty"`
}

// Connection is one entry from a profile's connections list.
type Connection struct {
	Name     string `json:"name,omitempty"`
	Headline string `json:"headline,omitempty"`
	URL      string `json:"url,omitempty"`
}
