package parsing

import "regexp"

// degreeRes match degree mentions in rough seniority order. The first hit per
// pattern is reported, so output order follows this list.
var degreeRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(B\.?S\.?|Bachelor of Science|Bachelor's)`),
	regexp.MustCompile(`(?i)(M\.?S\.?|Master of Science|Master's)`),
	regexp.MustCompile(`(?i)(Ph\.?D\.?|Doctorate)`),
	regexp.MustCompile(`(?i)(B\.?A\.?|Bachelor of Arts)`),
	regexp.MustCompile(`(?i)(M\.?B\.?A\.?|Master of Business Administration)`),
}

var gradYearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// ExtractDegrees returns one mention per matching degree pattern.
func ExtractDegrees(text string) []string {
	var degrees []string
	for _, re := range degreeRes {
		if m := re.FindString(text); m != "" {
			degrees = append(degrees, m)
		}
	}
	return degrees
}

// HasGraduationYear reports whether text contains a 4-digit year in 1900-2099.
func HasGraduationYear(text string) bool {
	return gradYearRe.MatchString(text)
}
