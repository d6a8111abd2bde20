// Package linkurl canonicalizes LinkedIn URLs for deduplication and parses
// the count strings that accompany entity links.
package linkurl

import (
	"regexp"
	"strings"
)

// BaseOrigin is prefixed onto relative hrefs pulled from the page.
const BaseOrigin = "https://www.linkedin.com"

// maxPlausibleCount guards count extraction against picking up unrelated
// numbers; no entity list on the site exceeds this.
const maxPlausibleCount = 10_000_000

var (
	numberRe = regexp.MustCompile(`[\d,]+`)
	// kNotationRe matches a count written in K-notation: the K must sit
	// directly on the number ("10K+"), not anywhere else in the text.
	kNotationRe = regexp.MustCompile(`(?i)(\d[\d,]*)\s*k\b`)
)

// Normalize maps a raw URL-like string to its canonical form: absolute
// against BaseOrigin, query and fragment stripped, trailing slash stripped,
// lower-cased. Two URLs normalizing to the same string denote the same
// entity. Normalizing an already-canonical URL returns it unchanged.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	url := strings.TrimSpace(raw)
	if !strings.HasPrefix(url, "http") {
		// Scheme-less text like "www.linkedin.com/in/x" is a bare host, not
		// a site-relative path.
		host := strings.TrimPrefix(url, "www.")
		if strings.HasPrefix(host, "linkedin.com") {
			url = BaseOrigin + strings.TrimPrefix(host, "linkedin.com")
		} else {
			url = BaseOrigin + "/" + strings.TrimPrefix(url, "/")
		}
	}

	if i := strings.IndexByte(url, '?'); i >= 0 {
		url = url[:i]
	}
	if i := strings.IndexByte(url, '#'); i >= 0 {
		url = url[:i]
	}
	url = strings.TrimRight(url, "/")
	return strings.ToLower(url)
}

// IsLinkedInURL reports whether raw points at the site at all; used to
// reject caller input before a scrape starts.
func IsLinkedInURL(raw string) bool {
	return strings.Contains(strings.ToLower(raw), "linkedin.com")
}

// IsProfileURL reports whether raw is a person profile link.
func IsProfileURL(raw string) bool {
	return strings.Contains(raw, "/in/")
}

// ExtractCount pulls the first plausible entity count out of text like
// "See all 12,345 employees on LinkedIn". Year-sized and absurd numbers are
// skipped. Returns 0 when no count is found.
func ExtractCount(text string) int {
	for _, match := range numberRe.FindAllString(text, -1) {
		if n := parseDigits(match); n > 0 && n < maxPlausibleCount {
			return n
		}
	}
	return 0
}

// ExpandKNotation converts "10K+" style headcount text into a number,
// falling back to ExtractCount for plain values. Only a K suffixed directly
// onto the number multiplies; a stray k elsewhere in the text does not.
func ExpandKNotation(text string) int {
	if m := kNotationRe.FindStringSubmatch(text); m != nil {
		if n := parseDigits(m[1]); n > 0 && n < maxPlausibleCount {
			return n * 1000
		}
	}
	return ExtractCount(text)
}

func parseDigits(match string) int {
	n := 0
	for _, r := range strings.ReplaceAll(match, ",", "") {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
