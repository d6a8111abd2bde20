package types

// Employee is one entry from a company's employee search results.
type Employee struct {
	Name        string `json:"name,omitempty"`
	Designation string `json:"designation,omitempty"`
	LinkedInURL string `json:"linkedin_url,omitempty"`
}

// Follower is one entry from a company's in-network followers modal.
type Follower struct {
	Name        string `json:"name,omitempty"`
	Headline    string `json:"headline,omitempty"`
	LinkedInURL string `json:"linkedin_url,omitempty"`
}

// CompanySummary is the lightweight shape used for showcase pages and
// affiliated companies.
type CompanySummary struct {
	Name        string `json:"name,omitempty"`
	LinkedInURL string `json:"linkedin_url,omitempty"`
	Followers   string `json:"followers,omitempty"`
}

// Company is the aggregate assembled by one company-page scrape.
type Company struct {
	LinkedInURL  string   `json:"linkedin_url,omitempty"`
	Name         string   `json:"name,omitempty"`
	AboutUs      string   `json:"about_us,omitempty"`
	Website      string   `json:"website,omitempty"`
	Headquarters string   `json:"headquarters,omitempty"`
	Industry     string   `json:"industry,omitempty"`
	CompanySize  string   `json:"company_size,omitempty"`
	Founded      int      `json:"founded,omitempty"`
	Specialties  []string `json:"specialties,omitempty"`
	Headcount    int      `json:"headcount,omitempty"`

	ShowcasePages       []CompanySummary `json:"showcase_pages,omitempty"`
	AffiliatedCompanies []CompanySummary `json:"affiliated_companies,omitempty"`
	Employees           []Employee       `json:"employees,omitempty"`
	Followers           []Follower       `json:"followers,omitempty"`

	ScrapingErrors map[string]string `json:"scraping_errors,omitempty"`
}

// NewCompany creates an empty Company aggregate for the given page URL.
func NewCompany(url string) *Company {
	return &Company{
		LinkedInURL:    url,
		ScrapingErrors: make(map[string]string),
	}
}

// AddEmployee appends an employee entry.
func (c *Company) AddEmployee(e Employee) {
	c.Employees = append(c.Employees, e)
}

// AddFollower appends a follower entry.
func (c *Company) AddFollower(f Follower) {
	c.Followers = append(c.Followers, f)
}

// AddShowcasePage appends a showcase-page summary.
func (c *Company) AddShowcasePage(s CompanySummary) {
	c.ShowcasePages = append(c.ShowcasePages, s)
}

// AddAffiliatedCompany appends an affiliated-company summary.
func (c *Company) AddAffiliatedCompany(s CompanySummary) {
	c.AffiliatedCompanies = append(c.AffiliatedCompanies, s)
}

// RecordError stores a per-section scraping error.
func (c *Company) RecordError(section string, err error) {
	if err == nil {
		return
	}
	if c.ScrapingErrors == nil {
		c.ScrapingErrors = make(map[string]string)
	}
	c.ScrapingErrors[section] = err.Error()
}
