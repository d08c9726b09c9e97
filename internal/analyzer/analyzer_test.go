package analyzer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/catalog"
)

const testCSV = `skill,category,weight
Python,programming,0.95
Go,programming,0.93
Java,programming,0.88
Docker,devops,0.85
Kubernetes,devops,0.90
AWS,cloud,0.92
React,web,0.80
SQL,data,0.75
`

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	cat, err := catalog.Parse(strings.NewReader(testCSV))
	require.NoError(t, err)
	a, err := New(cat)
	require.NoError(t, err)
	return a
}

const testResume = `Jane Smith
jane.smith@example.com
555-123-4567

Summary
Engineer with 6 years of experience in backend systems.

Experience
Senior Engineer, Acme, 2019-Present
- Led migration to Kubernetes and reduced costs by 30%
- Built Go services handling 50+ million requests daily
- Developed and improved CI pipelines, managed releases

Education
Bachelor of Science in Computer Science, 2015

Skills
Go, Python, Docker, Kubernetes, AWS
`

func TestAnalyzeText(t *testing.T) {
	a := newTestAnalyzer(t)

	analysis := a.AnalyzeText(testResume, nil)

	assert.NotEmpty(t, analysis.ID)
	assert.False(t, analysis.AnalyzedAt.IsZero())
	assert.Equal(t, 5, len(analysis.Skills))
	assert.Equal(t, 5, analysis.SkillStatistics.TotalSkills)
	assert.Equal(t, "jane.smith@example.com", analysis.StructuredData.Email)
	assert.Equal(t, 6, analysis.StructuredData.ExperienceYears)
	assert.NotEmpty(t, analysis.Grade)
	assert.Equal(t, 0, analysis.ATSScore.KeywordTotal)
}

func TestAnalyzeTextWithKeywords(t *testing.T) {
	a := newTestAnalyzer(t)

	analysis := a.AnalyzeText(testResume, []string{"Go", "Rust"})

	assert.Equal(t, 2, analysis.ATSScore.KeywordTotal)
	assert.Equal(t, 1, analysis.ATSScore.KeywordMatches)
}

func TestAnalyzeDocumentUnsupported(t *testing.T) {
	a := newTestAnalyzer(t)

	_, err := a.AnalyzeDocument([]byte("data"), "resume.odt", nil)
	assert.Error(t, err)
}

func TestAnalyzeDocumentText(t *testing.T) {
	a := newTestAnalyzer(t)

	analysis, err := a.AnalyzeDocument([]byte(testResume), "resume.txt", nil)
	require.NoError(t, err)
	assert.Equal(t, "resume.txt", analysis.Filename)
	assert.NotEmpty(t, analysis.Skills)
}

func TestMatchJobInfersRequiredYears(t *testing.T) {
	a := newTestAnalyzer(t)

	result := a.MatchJob(testResume, "Looking for a Go engineer with 10+ years of experience in Kubernetes", nil)

	require.NotNil(t, result.ExperienceMatch.RequiredYears)
	assert.Equal(t, 10, *result.ExperienceMatch.RequiredYears)
	assert.False(t, result.ExperienceMatch.MeetsRequirement)
}

func TestMatchJobExtractsSkillsFromBothSides(t *testing.T) {
	a := newTestAnalyzer(t)

	result := a.MatchJob(testResume, "Go and Kubernetes role, 3 years of experience required", nil)

	assert.InDelta(t, 100.0, result.SkillMatch.MatchPercentage, 1e-9)
	assert.True(t, result.ExperienceMatch.MeetsRequirement)
}

func TestCompareCandidates(t *testing.T) {
	a := newTestAnalyzer(t)

	ranked, err := a.CompareCandidates(context.Background(), map[string]string{
		"strong.txt": testResume,
		"weak.txt":   "Marketing coordinator with SQL exposure",
	}, "Go engineer role with Kubernetes, 3 years of experience", nil)

	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "strong.txt", ranked[0].Filename)
	assert.Greater(t, ranked[0].MatchScore, ranked[1].MatchScore)
}

func TestBatchAnalyzeIsolatesFailures(t *testing.T) {
	a := newTestAnalyzer(t)

	items := a.BatchAnalyze(context.Background(), []Document{
		{Filename: "good.txt", Data: []byte(testResume)},
		{Filename: "bad.odt", Data: []byte("data")},
		{Filename: "empty.txt", Data: []byte("  ")},
	}, nil)

	require.Len(t, items, 3)
	assert.Equal(t, "good.txt", items[0].Filename)
	require.NotNil(t, items[0].Analysis)
	assert.Empty(t, items[0].Error)

	assert.Nil(t, items[1].Analysis)
	assert.NotEmpty(t, items[1].Error)
	assert.Nil(t, items[2].Analysis)
	assert.NotEmpty(t, items[2].Error)
}

func TestAnalyzeTextSkillYears(t *testing.T) {
	a := newTestAnalyzer(t)

	analysis := a.AnalyzeText("Skills: Python (7 years), Docker (3 years)\nAlso familiar with AWS", nil)

	assert.Equal(t, 7, analysis.SkillYears["Python"])
	assert.Equal(t, 3, analysis.SkillYears["Docker"])
	assert.NotContains(t, analysis.SkillYears, "AWS")
}
