// Package parsing implements the extraction and normalization engine: text
// normalization, token classification, date-range parsing, and the
// description/skills splitter. Everything here is pure string processing so
// the same logic runs regardless of which page layout produced the text.
package parsing

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe   = regexp.MustCompile(`\s+`)
	multiNewlineRe = regexp.MustCompile(`\n+`)
	multiDotRe     = regexp.MustCompile(`·+`)
	blankLineRe    = regexp.MustCompile(`\n\s*\n`)
	trailingDashRe = regexp.MustCompile(`\s*-\s*$`)
	listMarkerRe   = regexp.MustCompile(`^[-•*]\s*`)
	numberMarkerRe = regexp.MustCompile(`^\d+\.\s*`)
	nonWordRe      = regexp.MustCompile(`[^\w\s]`)
)

// CleanText collapses runs of whitespace, newlines, and middle dots into
// single occurrences.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	cleaned := whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
	cleaned = multiNewlineRe.ReplaceAllString(cleaned, "\n")
	return multiDotRe.ReplaceAllString(cleaned, "·")
}

// CleanSingleString removes duplicated lines within the text of a single
// element ("Manager\nManager" renders once visually but twice in the DOM,
// once for screen readers). Surviving lines are joined with spaces.
func CleanSingleString(text string) string {
	if len(text) < 5 {
		return strings.TrimSpace(text)
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return strings.TrimSpace(text)
	}
	if len(lines) == 2 && lines[0] == lines[1] {
		return lines[0]
	}

	var unique []string
	for _, line := range lines {
		if !containsString(unique, line) {
			unique = append(unique, line)
		}
	}
	return strings.Join(unique, " ")
}

// CollapseDuplicates removes duplicated content from multi-line text: exact
// duplicate lines, repeated word runs within a line, and lines whose word
// content is already covered by the surrounding lines. The page renders the
// same sentence through more than one DOM path, so line-level equality alone
// is not enough.
func CollapseDuplicates(text string) string {
	if text == "" {
		return ""
	}

	var unique []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" && !containsString(unique, line) {
			unique = append(unique, line)
		}
	}
	for i, line := range unique {
		unique[i] = collapseRepeatedRuns(line)
	}
	result := dropCoveredLine(strings.Join(unique, "\n"))

	result = whitespaceRe.ReplaceAllString(result, " ")
	result = blankLineRe.ReplaceAllString(result, "\n")
	result = trailingDashRe.ReplaceAllString(result, "")
	return strings.TrimSpace(result)
}

// collapseRepeatedRuns removes an immediately repeated word run within a
// line ("Senior Engineer Senior Engineer" renders once visually). The
// longest doubled run wins at each position.
func collapseRepeatedRuns(line string) string {
	words := strings.Fields(line)
	if len(words) < 2 {
		return line
	}

	var out []string
	for i := 0; i < len(words); {
		run := 0
		for n := (len(words) - i) / 2; n >= 1; n-- {
			if equalRun(words[i:i+n], words[i+n:i+2*n]) {
				run = n
				break
			}
		}
		if run > 0 {
			out = append(out, words[i:i+run]...)
			i += 2 * run
		} else {
			out = append(out, words[i])
			i++
		}
	}
	return strings.Join(out, " ")
}

func equalRun(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// dropCoveredLine removes at most one line whose word set is mostly (>80%)
// made up of the words appearing on the other lines, which is the signature
// of a truncated/full duplicate pair rendered from different DOM paths.
func dropCoveredLine(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return text
	}

	for i, candidate := range lines {
		candidate = strings.TrimSpace(candidate)
		if len(candidate) < 30 {
			continue
		}

		var others []string
		for j, other := range lines {
			if i == j {
				continue
			}
			cleaned := listMarkerRe.ReplaceAllString(strings.TrimSpace(other), "")
			cleaned = numberMarkerRe.ReplaceAllString(cleaned, "")
			if cleaned != "" {
				others = append(others, cleaned)
			}
		}
		if len(others) == 0 {
			continue
		}

		candidateWords := wordSet(candidate)
		otherWords := wordSet(strings.Join(others, " "))
		if len(otherWords) == 0 {
			continue
		}

		overlap := 0
		for w := range candidateWords {
			if otherWords[w] {
				overlap++
			}
		}
		coverage := float64(overlap) / float64(len(otherWords))
		if coverage > 0.8 && float64(len(candidateWords)) > float64(len(otherWords))*0.5 {
			return strings.Join(append(lines[:i:i], lines[i+1:]...), "\n")
		}
	}
	return text
}

func wordSet(s string) map[string]bool {
	normalized := nonWordRe.ReplaceAllString(strings.ToLower(s), "")
	set := make(map[string]bool)
	for _, w := range strings.Fields(normalized) {
		set[w] = true
	}
	return set
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// stripMarkers removes leading list and numbering markers from a line before
// fuzzy comparison.
func stripMarkers(line string) string {
	line = listMarkerRe.ReplaceAllString(strings.TrimSpace(line), "")
	return numberMarkerRe.ReplaceAllString(line, "")
}
