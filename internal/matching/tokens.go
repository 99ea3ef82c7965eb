package matching

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

const maxMatchedSkills = 20

var yearsPattern = regexp.MustCompile(`(?i)(\d+)\s*[+-]?\s*(?:years?\s*(?:of\s*)?(?:experience|exp\.?)|y\.?o\.?e\.?|yrs?)`)

func isSeparator(r rune) bool {
	switch r {
	case ',', ';', '|', '/', '&':
		return true
	}
	return unicode.IsSpace(r)
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

// SkillTokens extracts normalized skill-like tokens from free text, typically
// a job's requirements plus description. Punctuation separators and newlines
// are boundaries; only plain alphanumeric words of length 2-50 survive.
func SkillTokens(text string) map[string]struct{} {
	tokens := map[string]struct{}{}
	if text == "" {
		return tokens
	}
	for _, part := range strings.FieldsFunc(strings.ToLower(text), isSeparator) {
		t := strings.Trim(part, ".-()")
		if len(t) >= 2 && len(t) <= 50 && isAlphanumeric(t) {
			tokens[t] = struct{}{}
		}
	}
	return tokens
}

// MatchedSkills returns the required tokens that occur anywhere in the
// candidate's raw skills text. The job side is tokenized but the candidate
// side is scanned as a substring, so "react" matches "ReactJS". Sorted for
// stable output, capped at maxMatchedSkills.
func MatchedSkills(tokens map[string]struct{}, skillsText string) []string {
	if len(tokens) == 0 || skillsText == "" {
		return nil
	}
	haystack := strings.ToLower(skillsText)
	matched := make([]string, 0, len(tokens))
	for t := range tokens {
		if strings.Contains(haystack, t) {
			matched = append(matched, t)
		}
	}
	sort.Strings(matched)
	if len(matched) > maxMatchedSkills {
		matched = matched[:maxMatchedSkills]
	}
	return matched
}

// RequiredYears extracts the first "<N> years experience"-style requirement
// from free text. Variants like "5+ yrs", "3 years of exp" and "4 y.o.e"
// all count. Returns false when the text carries no requirement signal.
func RequiredYears(text string) (int, bool) {
	m := yearsPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	years := 0
	for _, r := range m[1] {
		years = years*10 + int(r-'0')
	}
	return years, true
}
