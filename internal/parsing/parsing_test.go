package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEmail_Found(t *testing.T) {
	assert.Equal(t, "john.doe@email.com", ExtractEmail("John Doe | john.doe@email.com | NYC"))
}

func TestExtractEmail_NotFound(t *testing.T) {
	assert.Equal(t, "", ExtractEmail("no contact info here"))
}

func TestExtractPhone_Variants(t *testing.T) {
	assert.Equal(t, "555-123-4567", ExtractPhone("call 555-123-4567 anytime"))
	assert.Equal(t, "+1-555-123-4567", ExtractPhone("phone: +1-555-123-4567"))
	assert.Equal(t, "(555) 123-4567", ExtractPhone("phone: (555) 123-4567"))
	assert.Equal(t, "5551234567", ExtractPhone("raw 5551234567 digits"))
	assert.Equal(t, "", ExtractPhone("no number"))
}

func TestExtractName_FirstLines(t *testing.T) {
	text := "John Doe\njohn.doe@email.com\nSoftware Engineer"
	assert.Equal(t, "John Doe", ExtractName(text))
}

func TestExtractName_SkipsLinesWithDigits(t *testing.T) {
	text := "123 Main Street\nJane Ann Smith\nmore text"
	assert.Equal(t, "Jane Ann Smith", ExtractName(text))
}

func TestExtractName_NotFound(t *testing.T) {
	text := "lowercase line\nanother lowercase\nthird line here is way too long for a name"
	assert.Equal(t, "", ExtractName(text))
}

func TestExtractDegrees(t *testing.T) {
	text := "M.S. in Computer Science, 2020. B.S. in Mathematics, 2018."
	degrees := ExtractDegrees(text)

	// Pattern-list order: B.S. pattern first, then M.S.
	assert.Equal(t, []string{"B.S.", "M.S."}, degrees)
}

func TestExtractDegrees_None(t *testing.T) {
	assert.Empty(t, ExtractDegrees("self-taught programmer"))
}

func TestHasGraduationYear(t *testing.T) {
	assert.True(t, HasGraduationYear("Graduated in 2018"))
	assert.True(t, HasGraduationYear("Class of 1999"))
	assert.False(t, HasGraduationYear("Graduated in 18"))
	assert.False(t, HasGraduationYear("popular in the 2020s")) // no word boundary
}

func TestExperienceYears_MaxOfAllClaims(t *testing.T) {
	text := "3 years experience in frontend. 7+ years of experience overall. Experience of 5 years with Go."
	assert.Equal(t, 7, ExperienceYears(text))
}

func TestExperienceYears_NotFound(t *testing.T) {
	assert.Equal(t, 0, ExperienceYears("experienced engineer"))
}

func TestHasDateRange_Shapes(t *testing.T) {
	assert.True(t, HasDateRange("Tech Corp (2019-2023)"))
	assert.True(t, HasDateRange("Tech Corp, 2020 - Present"))
	assert.True(t, HasDateRange("Jan 2019 - Mar 2022"))
	assert.True(t, HasDateRange("January 2019 - March 2022"))
	assert.False(t, HasDateRange("worked for four years"))
}

func TestExtractStructuredData(t *testing.T) {
	text := `John Doe
john.doe@email.com | 555-123-4567

PROFESSIONAL SUMMARY
Senior Software Engineer with 5+ years of experience

EDUCATION
M.S. in Computer Science, Stanford, 2020`

	data := ExtractStructuredData(text)

	assert.Equal(t, "John Doe", data.Name)
	assert.Equal(t, "john.doe@email.com", data.Email)
	assert.Equal(t, "555-123-4567", data.Phone)
	assert.Equal(t, []string{"M.S."}, data.Education)
	assert.Equal(t, 5, data.ExperienceYears)
}
