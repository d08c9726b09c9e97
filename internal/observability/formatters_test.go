package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	analysis := &analyzer.Analysis{
		Grade: "B",
		ATSScore: types.ATSScoreResult{
			OverallScore: 82.5,
			SectionScores: map[string]float64{
				"formatting": 100,
				"keywords":   75,
				"experience": 85,
				"education":  80,
				"skills":     60,
			},
			Recommendations: []string{"List more relevant technical and professional skills"},
			KeywordMatches:  3,
			KeywordTotal:    4,
		},
		Skills: []types.ExtractedSkill{
			{Name: "Go", Category: "programming", Weight: 0.93},
			{Name: "Docker", Category: "devops", Weight: 0.85},
		},
	}

	p.PrintAnalysis(analysis)
	output := buf.String()

	assert.Contains(t, output, "ATS COMPATIBILITY REPORT")
	assert.Contains(t, output, "82.5")
	assert.Contains(t, output, "grade B")
	assert.Contains(t, output, "formatting")
	assert.Contains(t, output, "3/4 matched")
	assert.Contains(t, output, "Go, Docker")
}

func TestPrintAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(nil)

	assert.Empty(t, buf.String())
}

func TestPrintAnalysis_SkipsUnscoredKeywords(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(&analyzer.Analysis{
		Grade: "C",
		ATSScore: types.ATSScoreResult{
			OverallScore:  70,
			SectionScores: map[string]float64{"formatting": 100},
		},
	})
	output := buf.String()

	assert.NotContains(t, output, "keywords")
	assert.NotContains(t, output, "matched")
}

func TestPrintJobMatch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.JobMatchResult{
		OverallScore: 74.2,
		MatchLevel:   types.MatchGood,
		TextSimilarity: types.SimilarityResult{
			OverallSimilarity: 0.62,
		},
		SkillMatch: types.SkillMatchResult{
			MatchPercentage: 66.7,
			MissingSkills:   []string{"kubernetes"},
		},
		ExperienceMatch: types.ExperienceMatch{
			CandidateYears:  5,
			ExperienceLevel: types.LevelSenior,
		},
		Recommendations: []string{"Highlight your most relevant experience near the top of the resume"},
	}

	p.PrintJobMatch(result)
	output := buf.String()

	assert.Contains(t, output, "JOB MATCH")
	assert.Contains(t, output, "74.2")
	assert.Contains(t, output, "Good Match")
	assert.Contains(t, output, "kubernetes")
	assert.Contains(t, output, "5 years")
}

func TestPrintJobMatch_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobMatch(nil)

	assert.Empty(t, buf.String())
}

func TestPrintRankedCandidates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	ranked := []types.RankedCandidate{
		{
			Candidate:  types.Candidate{Filename: "alice.pdf", Skills: []string{"Go", "AWS"}},
			MatchScore: 88.0,
			MatchLevel: types.MatchExcellent,
		},
		{
			Candidate:  types.Candidate{Filename: "bob.pdf", Skills: []string{"Python"}},
			MatchScore: 61.5,
			MatchLevel: types.MatchFair,
		},
	}

	p.PrintRankedCandidates(ranked)
	output := buf.String()

	assert.Contains(t, output, "CANDIDATE RANKING")
	assert.Contains(t, output, "#1  alice.pdf")
	assert.Contains(t, output, "88.0")
	assert.Contains(t, output, "#2  bob.pdf")
	assert.Contains(t, output, "Go, AWS")
}

func TestPrintRankedCandidates_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRankedCandidates(nil)

	assert.Empty(t, buf.String())
}
