package parsing

import "strings"

// employmentTypes mirrors the fixed vocabulary the site offers when editing
// a position. Longer compound forms come first in spirit: membership is
// tested on the whole set, so ordering only matters for extraction below.
var employmentTypes = map[string]bool{
	"self-employed":       true,
	"freelance":           true,
	"internship":          true,
	"apprenticeship":      true,
	"contract full-time":  true,
	"permanent part-time": true,
	"contract part-time":  true,
	"casual / on-call":    true,
	"seasonal":            true,
	"permanent full-time": true,
	"co-op":               true,
	"full-time":           true,
	"part-time":           true,
	"contract":            true,
	"temporary":           true,
	"volunteer":           true,
	"work study":          true,
}

// employmentSeparators are the delimiters used inside compound tokens like
// "Acme Corp · Contract" or "Contract, Remote".
var employmentSeparators = []string{"·", ",", "-", "•"}

// IsEmploymentTypeExact reports whether text, as a whole, is one of the
// employment-type vocabulary entries.
func IsEmploymentTypeExact(text string) bool {
	return employmentTypes[strings.ToLower(strings.TrimSpace(text))]
}

// IsEmploymentType reports whether text is or contains an employment type.
func IsEmploymentType(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(strings.TrimSpace(text))
	if employmentTypes[lower] {
		return true
	}
	for et := range employmentTypes {
		if strings.Contains(lower, et) {
			return true
		}
	}
	return false
}

// ExtractEmploymentType pulls the employment-type part out of text that may
// mix it with other content ("Acme Corp · Freelance" yields "Freelance").
// Returns "" when no vocabulary entry is found.
func ExtractEmploymentType(text string) string {
	if text == "" {
		return ""
	}
	trimmed := strings.TrimSpace(text)
	if employmentTypes[strings.ToLower(trimmed)] {
		return trimmed
	}

	for _, sep := range employmentSeparators {
		if !strings.Contains(text, sep) {
			continue
		}
		for _, part := range strings.Split(text, sep) {
			part = strings.TrimSpace(part)
			if employmentTypes[strings.ToLower(part)] {
				return part
			}
		}
	}

	// Last resort: a single word of the text matches the vocabulary.
	lower := strings.ToLower(trimmed)
	for et := range employmentTypes {
		if strings.Contains(lower, et) {
			for _, word := range strings.Fields(trimmed) {
				if employmentTypes[strings.ToLower(word)] {
					return word
				}
			}
		}
	}
	return ""
}
