package parsing

import (
	"regexp"
	"strconv"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// experienceYearRes match explicit experience claims like
// "5+ years of experience" and "experience of 5 years".
var experienceYearRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s+(?:of\s+)?experience`),
	regexp.MustCompile(`(?i)experience\s+(?:of\s+)?(\d+)\+?\s*years?`),
}

// dateRangeRes match the employment date shapes the ATS scorer looks for:
// "2019-2023", "2020 - Present", "Jan 2019 - Mar 2022".
var dateRangeRes = []*regexp.Regexp{
	regexp.MustCompile(`\b(19|20)\d{2}\s*[-–]\s*(19|20)\d{2}\b`),
	regexp.MustCompile(`(?i)\b(19|20)\d{2}\s*[-–]\s*present\b`),
	regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(19|20)\d{2}\s*[-–]\s*(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(19|20)\d{2}\b`),
}

// ExperienceYears scans for explicit experience claims and returns the
// maximum years found. Returns 0 when no claim matches.
func ExperienceYears(text string) int {
	maxYears := 0
	for _, re := range experienceYearRes {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			years, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if years > maxYears {
				maxYears = years
			}
		}
	}
	return maxYears
}

// HasDateRange reports whether text contains any employment date-range shape.
func HasDateRange(text string) bool {
	for _, re := range dateRangeRes {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// ExtractStructuredData bundles the heuristic extractors into the structured
// view the API layer serializes.
func ExtractStructuredData(text string) types.StructuredData {
	contact := ExtractContactInfo(text)
	return types.StructuredData{
		Name:            contact.Name,
		Email:           contact.Email,
		Phone:           contact.Phone,
		Education:       ExtractDegrees(text),
		ExperienceYears: ExperienceYears(text),
	}
}
