package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/linkedin-scraper/internal/config"
)

// fakePage satisfies browser.Page and the cookie-setter capability without
// a browser.
type fakePage struct {
	cookies     map[string]string
	navigations []string
	navErr      error
	waitErr     error
}

func newFakePage() *fakePage {
	return &fakePage{cookies: make(map[string]string)}
}

func (f *fakePage) SetAuthCookie(_ context.Context, name, value, _ string) error {
	f.cookies[name] = value
	return nil
}

func (f *fakePage) Navigate(_ context.Context, url string) error {
	if f.navErr != nil {
		return f.navErr
	}
	f.navigations = append(f.navigations, url)
	return nil
}

func (f *fakePage) WaitVisible(context.Context, string) error { return f.waitErr }

func (f *fakePage) Text(context.Context, string) (string, error) { return "", nil }

func (f *fakePage) OuterHTML(context.Context, string) (string, error) {
	return "<main></main>", nil
}

func (f *fakePage) Attribute(context.Context, string, string) (string, bool, error) {
	return "", false, nil
}

func (f *fakePage) Click(context.Context, string) error { return nil }

func (f *fakePage) Evaluate(context.Context, string, any) error { return nil }

func (f *fakePage) Location(context.Context) (string, error) {
	if len(f.navigations) == 0 {
		return "about:blank", nil
	}
	return f.navigations[len(f.navigations)-1], nil
}

func TestLogin(t *testing.T) {
	page := newFakePage()
	s := New(page, false)

	require.NoError(t, s.Login(context.Background(), "AQEDAcookie"))

	assert.Equal(t, "AQEDAcookie", page.cookies["li_at"])
	require.NotEmpty(t, page.navigations)
	assert.Contains(t, page.navigations[0], "/feed")
}

func TestLogin_EmptyCookie(t *testing.T) {
	s := New(newFakePage(), false)

	err := s.Login(context.Background(), "")
	var authErr *AuthError
	assert.ErrorAs(t, err, &authErr)
}

func TestLogin_VerificationFails(t *testing.T) {
	page := newFakePage()
	page.waitErr = errors.New("selector never appeared")
	s := New(page, false)

	err := s.Login(context.Background(), "AQEDAexpired")
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)

	_, err = s.ScrapePerson(context.Background(), "https://www.linkedin.com/in/jane", config.PersonMinimal)
	assert.ErrorIs(t, err, ErrNotAuthenticated, "failed login leaves the session unusable")
}

func TestScrapePerson_RequiresAuth(t *testing.T) {
	s := New(newFakePage(), false)
	_, err := s.ScrapePerson(context.Background(), "https://www.linkedin.com/in/jane", config.PersonMinimal)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestScrapePerson(t *testing.T) {
	page := newFakePage()
	s := New(page, false)
	require.NoError(t, s.Login(context.Background(), "AQEDAcookie"))

	p, err := s.ScrapePerson(context.Background(), "https://www.linkedin.com/in/jane-doe/", config.PersonMinimal)
	require.NoError(t, err)
	assert.Equal(t, "https://www.linkedin.com/in/jane-doe", p.LinkedInURL)

	// The guard must be released: a second scrape on the same session works.
	_, err = s.ScrapePerson(context.Background(), "https://www.linkedin.com/in/max-power", config.PersonMinimal)
	require.NoError(t, err)
}

func TestScrapePerson_RejectsNonProfileURL(t *testing.T) {
	s := New(newFakePage(), false)
	require.NoError(t, s.Login(context.Background(), "AQEDAcookie"))

	_, err := s.ScrapePerson(context.Background(), "https://example.com/jane", config.PersonMinimal)
	assert.Error(t, err)
}

func TestScrapeCompany(t *testing.T) {
	page := newFakePage()
	s := New(page, false)
	require.NoError(t, s.Login(context.Background(), "AQEDAcookie"))

	c, err := s.ScrapeCompany(context.Background(), "https://www.linkedin.com/company/globex/", config.CompanyAll, 1)
	require.NoError(t, err)
	assert.Equal(t, "https://www.linkedin.com/company/globex", c.LinkedInURL)
}
