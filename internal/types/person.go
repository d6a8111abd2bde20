package types

// Experience is one work-history entry. All fields are optional; absence
// means the field was not observed on the page, never that it was inferred.
type Experience struct {
	Institution

	PositionTitle  string   `json:"position_title,omitempty"`
	FromDate       string   `json:"from_date,omitempty"`
	ToDate         string   `json:"to_date,omitempty"`
	Duration       string   `json:"duration,omitempty"`
	Location       string   `json:"location,omitempty"`
	EmploymentType string   `json:"employment_type,omitempty"`
	Description    string   `json:"description,omitempty"`
	Skills         []string `json:"skills,omitempty"`
}

// Education is one education-history entry.
type Education struct {
	Institution

	Degree      string   `json:"degree,omitempty"`
	FromDate    string   `json:"from_date,omitempty"`
	ToDate      string   `json:"to_date,omitempty"`
	Description string   `json:"description,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

// InterestType categorizes an entry on the interests page by the kind of
// entity it links to.
type InterestType string

const (
	InterestInfluencer InterestType = "influencer"
	InterestCompany    InterestType = "company"
	InterestGroup      InterestType = "group"
	InterestNewsletter InterestType = "newsletter"
	InterestSchool     InterestType = "school"
	InterestUnknown    InterestType = "unknown"
)

// Interest is one followed entity from the interests page.
type Interest struct {
	Name      string       `json:"name"`
	Type      InterestType `json:"type"`
	URL       string       `json:"url,omitempty"`
	Followers string       `json:"followers,omitempty"`
}

// Honor is one honors-and-awards entry.
type Honor struct {
	Title          string `json:"title"`
	Issuer         string `json:"issuer,omitempty"`
	Date           string `json:"date,omitempty"`
	AssociatedWith string `json:"associated_with,omitempty"`
	DocumentURL    string `json:"document_url,omitempty"`
}

// Language is one language-proficiency entry.
type Language struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty"`
}

// Person is the aggregate assembled by one person-profile scrape. It is
// created per invocation, populated section by section, and handed back
// possibly partially populated; callers consult ScrapingErrors to learn
// which sections are incomplete.
type Person struct {
	LinkedInURL     string       `json:"linkedin_url,omitempty"`
	Name            string       `json:"name,omitempty"`
	Headline        string       `json:"headline,omitempty"`
	Location        string       `json:"location,omitempty"`
	About           []string     `json:"about,omitempty"`
	OpenToWork      bool         `json:"open_to_work,omitempty"`
	Experiences     []Experience `json:"experiences,omitempty"`
	Educations      []Education  `json:"educations,omitempty"`
	Interests       []Interest   `json:"interests,omitempty"`
	Honors          []Honor      `json:"honors,omitempty"`
	Languages       []Language   `json:"languages,omitempty"`
	Connections     []Connection `json:"connections,omitempty"`
	ConnectionCount int          `json:"connection_count,omitempty"`
	ContactInfo     *ContactInfo `json:"contact_info,omitempty"`
	AlsoViewedURLs  []string     `json:"also_viewed_urls,omitempty"`

	ScrapingErrors map[string]string `json:"scraping_errors,omitempty"`
}

// NewPerson creates an empty Person aggregate for the given profile URL.
func NewPerson(url string) *Person {
	return &Person{
		LinkedInURL:    url,
		ScrapingErrors: make(map[string]string),
	}
}

// AddExperience appends a work-history entry.
func (p *Person) AddExperience(e Experience) {
	p.Experiences = append(p.Experiences, e)
}

// AddEducation appends an education entry.
func (p *Person) AddEducation(e Education) {
	p.Educations = append(p.Educations, e)
}

// AddInterest appends an interest entry.
func (p *Person) AddInterest(i Interest) {
	p.Interests = append(p.Interests, i)
}

// AddHonor appends an honors-and-awards entry.
func (p *Person) AddHonor(h Honor) {
	p.Honors = append(p.Honors, h)
}

// HasHonor reports whether an honor with the given title was already added.
// Honors can surface both on the main profile and on the details page.
func (p *Person) HasHonor(title string) bool {
	for _, h := range p.Honors {
		if h.Title == title {
			return true
		}
	}
	return false
}

// AddLanguage appends a language entry.
func (p *Person) AddLanguage(l Language) {
	p.Languages = append(p.Languages, l)
}

// HasLanguage reports whether a language with the given name was already added.
func (p *Person) HasLanguage(name string) bool {
	for _, l := range p.Languages {
		if l.Name == name {
			return true
		}
	}
	return false
}

// AddConnection appends a connection entry.
func (p *Person) AddConnection(c Connection) {
	p.Connections = append(p.Connections, c)
}

// RecordError stores a per-section scraping error. A present-but-empty
// section result is distinct from an error entry.
func (p *Person) RecordError(section string, err error) {
	if err == nil {
		return
	}
	if p.ScrapingErrors == nil {
		p.ScrapingErrors = make(map[string]string)
	}
	p.ScrapingErrors[section] = err.Error()
}

// CurrentCompany returns the institution of the most recent experience, or "".
func (p *Person) CurrentCompany() string {
	if len(p.Experiences) > 0 {
		return p.Experiences[0].InstitutionName
	}
	return ""
}

// CurrentJobTitle returns the title of the most recent experience, or "".
func (p *Person) CurrentJobTitle() string {
	if len(p.Experiences) > 0 {
		return p.Experiences[0].PositionTitle
	}
	return ""
}
