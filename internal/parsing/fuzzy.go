package parsing

import (
	"strings"

	"github.com/agext/levenshtein"
)

// Similarity thresholds for near-duplicate description lines. Tuned against
// the site's current markup; adjust if layouts change.
var (
	// RatioThreshold is the full-string similarity (0-100) above which a new
	// line is treated as a duplicate of an existing one.
	RatioThreshold = 80
	// PartialRatioThreshold is the containment similarity (0-100) above which
	// a longer line is treated as already covering an existing line.
	PartialRatioThreshold = 90
)

// minComparableLen is the minimum line length worth fuzzy-comparing; shorter
// fragments produce meaningless ratios.
const minComparableLen = 20

// ratio returns a 0-100 similarity score between two strings.
func ratio(a, b string) int {
	return int(levenshtein.Similarity(a, b, levenshtein.NewParams()) * 100)
}

// partialRatio returns the best 0-100 similarity between needle and any
// word-aligned window of haystack with the same word count. Containment
// scores 100 outright.
func partialRatio(needle, haystack string) int {
	if needle == "" || haystack == "" {
		return 0
	}
	if strings.Contains(haystack, needle) {
		return 100
	}

	needleWords := strings.Fields(needle)
	haystackWords := strings.Fields(haystack)
	if len(haystackWords) <= len(needleWords) {
		return ratio(needle, haystack)
	}

	best := 0
	for i := 0; i+len(needleWords) <= len(haystackWords); i++ {
		window := strings.Join(haystackWords[i:i+len(needleWords)], " ")
		if r := ratio(needle, window); r > best {
			best = r
		}
	}
	return best
}

// IsNearDuplicate reports whether line carries essentially the same content
// as one of the already-collected description lines. It is used when
// assembling a description from multiple DOM elements, where the page tends
// to render the same sentence twice (once truncated, once full). Skills use
// exact matching instead; this is for free text only.
func IsNearDuplicate(line string, existing []string) bool {
	normalized := stripMarkers(line)
	if len(normalized) < minComparableLen || len(existing) == 0 {
		return false
	}
	lower := strings.ToLower(normalized)

	var candidates []string
	for _, e := range existing {
		if cleaned := stripMarkers(e); len(cleaned) >= minComparableLen {
			candidates = append(candidates, strings.ToLower(cleaned))
		}
	}
	if len(candidates) == 0 {
		return false
	}

	for _, c := range candidates {
		if ratio(lower, c) >= RatioThreshold {
			return true
		}
	}

	// The new line may be a concatenation of several already-seen lines.
	if ratio(lower, strings.Join(candidates, " ")) >= RatioThreshold {
		return true
	}

	for _, c := range candidates {
		if partialRatio(c, lower) >= PartialRatioThreshold {
			return true
		}
	}
	return false
}
