package parsing

import "strings"

// skillsPrefix marks a line that carries the entry's skills list.
const skillsPrefix = "Skills:"

// institutionKeywords flag fragments that belong to an adjoining
// institution entry rather than the skills list; the extractor occasionally
// captures neighbouring section text. Includes the German equivalents seen
// on multi-language profiles.
var institutionKeywords = []string{
	"university",
	"college",
	"school",
	"institute",
	"hochschule",
	"technische",
}

// sectionBleedKeywords extend institutionKeywords with words that signal a
// languages-section line leaking into a description.
var sectionBleedKeywords = append([]string{"english", "german"}, institutionKeywords...)

// ExtractDescriptionAndSkills separates free-text narrative from an appended
// "Skills: …" segment. Skills lines split on "·" when present, otherwise on
// ","; fragments containing newlines or institution keywords are dropped as
// cross-section bleed-through. Skills are deduplicated by exact match in
// first-seen order. Description lines that fuzzily duplicate already
// collected lines are dropped (see IsNearDuplicate).
func ExtractDescriptionAndSkills(text string) (string, []string) {
	if text == "" {
		return "", nil
	}

	// Fast path only for single-line input: with more lines the remainder
	// must go through the loop or later lines would leak into the payload.
	if strings.HasPrefix(text, skillsPrefix) && !strings.Contains(text, "\n") {
		return "", dedupeSkills(parseSkillsText(strings.TrimSpace(text[len(skillsPrefix):])))
	}

	var descriptionLines []string
	var skills []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, skillsPrefix) {
			skillsText := strings.TrimSpace(line[len(skillsPrefix):])
			skills = append(skills, parseSkillsText(truncateAtInstitution(skillsText))...)
			continue
		}

		if containsAnyKeyword(line, sectionBleedKeywords) {
			continue
		}
		if IsNearDuplicate(line, descriptionLines) {
			continue
		}
		descriptionLines = append(descriptionLines, line)
	}

	return strings.Join(descriptionLines, "\n"), dedupeSkills(skills)
}

// parseSkillsText splits a skills payload on the site's separators and drops
// fragments polluted by newlines or institution names.
func parseSkillsText(skillsText string) []string {
	if skillsText == "" {
		return nil
	}

	sep := ","
	if strings.Contains(skillsText, "·") {
		sep = "·"
	}

	var skills []string
	for _, fragment := range strings.Split(skillsText, sep) {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" || strings.Contains(fragment, "\n") {
			continue
		}
		if containsAnyKeyword(fragment, institutionKeywords) {
			continue
		}
		skills = append(skills, fragment)
	}
	return skills
}

// truncateAtInstitution cuts a skills payload short at the first word that
// names an institution, keeping the valid leading skills.
func truncateAtInstitution(skillsText string) string {
	if !containsAnyKeyword(skillsText, sectionBleedKeywords) {
		return skillsText
	}

	var kept []string
	for _, word := range strings.Fields(skillsText) {
		if containsAnyKeyword(word, institutionKeywords) {
			break
		}
		kept = append(kept, word)
	}
	return strings.Join(kept, " ")
}

func dedupeSkills(skills []string) []string {
	var unique []string
	for _, skill := range skills {
		if !containsString(unique, skill) {
			unique = append(unique, skill)
		}
	}
	return unique
}

func containsAnyKeyword(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
