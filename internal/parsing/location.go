package parsing

import "strings"

// locationIndicators are keywords that mark a token as a geographic location
// rather than an employment type. A comma alone ("City, Country") also
// qualifies. The named places cover layouts where the page renders bare
// city/region names without any structural hint.
var locationIndicators = []string{
	",",
	"area",
	"region",
	"metropolitan",
	"remote",
	"on-site",
	"hybrid",
	"city",
	"state",
	"province",
	"country",
	"district",
	"county",
	"greater",
	"germany",
	"austria",
	"canada",
	"usa",
	"united states",
	"united kingdom",
	"france",
	"am main",
	"rhine-main",
}

// IsGeographicLocation reports whether text looks like a geographic location.
// Employment-type signal wins: "Freelance" is never a location even though
// compound strings can carry both.
func IsGeographicLocation(text string) bool {
	if text == "" {
		return false
	}
	if IsEmploymentType(text) {
		return false
	}
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, indicator := range locationIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}
