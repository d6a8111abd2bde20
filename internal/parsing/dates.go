package parsing

import (
	"regexp"
	"strings"
)

var (
	dateRangeRe = regexp.MustCompile(`(?i)^\s*(?:(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+)?\d{4}\s*-\s*(?:(?:(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+)?\d{4}|Present)?\s*$`)
	fromDateRe  = regexp.MustCompile(`(?i)^(?:(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+)?\d{4}$`)
	toDateRe    = regexp.MustCompile(`(?i)^(?:(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+)?\d{4}$|^Present$`)
)

// IsDateRange reports whether text matches the profile date-range shape:
// "2020 - 2024", "Oct 2024 - Apr 2025", "May 2024 - Present", "2015 -".
func IsDateRange(text string) bool {
	if text == "" || !strings.Contains(text, "-") {
		return false
	}
	return dateRangeRe.MatchString(strings.TrimSpace(text))
}

// ParseDateRange splits a date-range token at the first dash and validates
// both sides. The right side may be empty (ongoing range) or "Present"; both
// are preserved verbatim. A failed validation returns ("", ""); callers
// distinguish an ongoing range from a failed parse by checking whether the
// returned from date is non-empty.
func ParseDateRange(text string) (from, to string) {
	if text == "" || !strings.Contains(text, "-") {
		return "", ""
	}

	parts := strings.SplitN(text, "-", 2)
	from = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		to = strings.TrimSpace(parts[1])
	}

	if !fromDateRe.MatchString(from) {
		return "", ""
	}
	if to != "" && !toDateRe.MatchString(to) {
		return "", ""
	}
	return from, to
}

// WorkTimes is the parsed form of a date token like
// "Oct 2024 - Apr 2025 · 7 mos": the date range plus the appended duration
// annotation, which is captured separately and never folded into the dates.
type WorkTimes struct {
	FromDate string
	ToDate   string
	Duration string
}

// ParseWorkTimes splits the "· duration" annotation off a date token and
// parses the remaining range.
func ParseWorkTimes(text string) WorkTimes {
	var wt WorkTimes
	if text == "" {
		return wt
	}

	parts := strings.SplitN(text, "·", 2)
	datePart := strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		wt.Duration = strings.TrimSpace(parts[1])
	}

	// Split at the first dash, spaced or not, like ParseDateRange does; an
	// ongoing range leaves ToDate empty.
	if i := strings.IndexByte(datePart, '-'); i >= 0 {
		wt.FromDate = strings.TrimSpace(datePart[:i])
		wt.ToDate = strings.TrimSpace(datePart[i+1:])
	} else if datePart != "" {
		fields := strings.Fields(datePart)
		if len(fields) >= 2 {
			wt.FromDate = strings.Join(fields[:2], " ")
		}
	}
	return wt
}

// ContainsDateRange reports whether any ·-separated part of text is a date
// range. Date tokens on the page arrive as "Oct 2024 - Apr 2025 · 7 mos".
func ContainsDateRange(text string) bool {
	if !strings.Contains(text, "·") {
		return IsDateRange(text)
	}
	for _, part := range strings.Split(text, "·") {
		if IsDateRange(strings.TrimSpace(part)) {
			return true
		}
	}
	return false
}
