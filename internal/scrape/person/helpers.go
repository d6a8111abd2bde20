package person

import (
	"strings"

	"github.com/jonathan/linkedin-scraper/internal/parsing"
)

func cleanLine(s string) string {
	return parsing.CleanSingleString(strings.TrimSpace(s))
}

// splitAbout turns the raw about-section text into cleaned paragraphs.
// Splitting happens before normalization: CleanText collapses newlines away.
func splitAbout(raw string) []string {
	var out []string
	for _, para := range strings.Split(raw, "\n") {
		para = parsing.CleanText(para)
		if para != "" && !strings.EqualFold(para, "…see more") {
			out = append(out, para)
		}
	}
	return out
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
