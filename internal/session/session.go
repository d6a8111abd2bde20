// Package session owns an authenticated browsing session: one browser page,
// cookie auth, and the one-scrape-at-a-time guard.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/jonathan/linkedin-scraper/internal/browser"
	"github.com/jonathan/linkedin-scraper/internal/config"
	"github.com/jonathan/linkedin-scraper/internal/scrape/company"
	"github.com/jonathan/linkedin-scraper/internal/scrape/person"
	"github.com/jonathan/linkedin-scraper/internal/types"
)

const (
	cookieName   = "li_at"
	cookieDomain = ".www.linkedin.com"
	feedURL      = "https://www.linkedin.com/feed/"
	// globalNavSelector renders only for signed-in users; it is the
	// post-login verification probe.
	globalNavSelector = ".global-nav__me, #global-nav"
)

// ErrNotAuthenticated is returned when a scrape is attempted before Login
// succeeded.
var ErrNotAuthenticated = errors.New("session is not authenticated")

// AuthError is a failed login: the cookie was rejected or the signed-in
// chrome never rendered.
type AuthError struct {
	Cause error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %v", e.Cause)
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// cookieSetter is the extra capability beyond browser.Page that cookie
// auth needs; the chromedp page provides it.
type cookieSetter interface {
	SetAuthCookie(ctx context.Context, name, value, domain string) error
}

// Session is an authenticated scraping session. It owns one page; scrapes
// are serialized because they navigate that shared page.
type Session struct {
	page          browser.Page
	verbose       bool
	authenticated bool
	guard         *semaphore.Weighted
	close         func()
}

// New creates a session over an already-running page. Close releases
// nothing in this form; use Start to own the browser lifetime.
func New(page browser.Page, verbose bool) *Session {
	return &Session{
		page:    page,
		verbose: verbose,
		guard:   semaphore.NewWeighted(1),
		close:   func() {},
	}
}

// Start launches a browser and returns a session owning it. Close must be
// called to shut the browser down.
func Start(ctx context.Context, cfg *config.Config) (*Session, error) {
	page, err := browser.NewChromePage(ctx, browser.ChromeOptions{
		Headless: cfg.Headless,
		Verbose:  cfg.Verbose,
	})
	if err != nil {
		return nil, err
	}
	s := New(page, cfg.Verbose)
	s.close = page.Close
	return s, nil
}

// Close shuts down the session's browser.
func (s *Session) Close() {
	s.close()
}

func (s *Session) logf(format string, args ...any) {
	if s.verbose {
		log.Printf("[SESSION] "+format, args...)
	}
}

// Login authenticates with the given li_at cookie value: install the
// cookie, load the feed, and verify the signed-in navigation renders. An
// expired or invalid cookie leaves the feed page on the login wall, which
// fails the verification probe.
func (s *Session) Login(ctx context.Context, cookie string) error {
	if cookie == "" {
		return &AuthError{Cause: errors.New("empty cookie")}
	}
	setter, ok := s.page.(cookieSetter)
	if !ok {
		return &AuthError{Cause: errors.New("page does not support cookie injection")}
	}

	if err := setter.SetAuthCookie(ctx, cookieName, cookie, cookieDomain); err != nil {
		return &AuthError{Cause: err}
	}
	if err := s.page.Navigate(ctx, feedURL); err != nil {
		return &AuthError{Cause: err}
	}
	if err := s.page.WaitVisible(ctx, globalNavSelector); err != nil {
		return &AuthError{Cause: fmt.Errorf("signed-in navigation did not render: %w", err)}
	}

	s.authenticated = true
	s.logf("authenticated")
	return nil
}

// ScrapePerson scrapes one person profile. Concurrent calls on the same
// session are serialized; each run gets its own run ID in the logs.
func (s *Session) ScrapePerson(ctx context.Context, url string, fields config.PersonFields) (*types.Person, error) {
	if err := s.acquire(ctx); err != nil {
		return nil, err
	}
	defer s.guard.Release(1)

	runID := uuid.New().String()
	s.logf("run %s: person %s", runID, url)
	p, err := person.NewScraper(s.page, s.verbose).Scrape(ctx, url, fields)
	if err != nil {
		s.logf("run %s: failed: %v", runID, err)
		return nil, err
	}
	s.logf("run %s: done, %d section errors", runID, len(p.ScrapingErrors))
	return p, nil
}

// ScrapeCompany scrapes one company page. budget bounds the employee
// pagination.
func (s *Session) ScrapeCompany(ctx context.Context, url string, fields config.CompanyFields, budget int) (*types.Company, error) {
	if err := s.acquire(ctx); err != nil {
		return nil, err
	}
	defer s.guard.Release(1)

	runID := uuid.New().String()
	s.logf("run %s: company %s", runID, url)
	c, err := company.NewScraper(s.page, s.verbose).Scrape(ctx, url, fields, budget)
	if err != nil {
		s.logf("run %s: failed: %v", runID, err)
		return nil, err
	}
	s.logf("run %s: done, %d section errors", runID, len(c.ScrapingErrors))
	return c, nil
}

func (s *Session) acquire(ctx context.Context) error {
	if !s.authenticated {
		return ErrNotAuthenticated
	}
	if err := s.guard.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("waiting for session: %w", err)
	}
	return nil
}
