package matching

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func intPtr(n int) *int { return &n }

func TestCalculateExperienceMatchMeetsRequirement(t *testing.T) {
	result := CalculateExperienceMatch("I have 5+ years of experience building APIs", intPtr(5))

	assert.Equal(t, 5, result.CandidateYears)
	assert.True(t, result.MeetsRequirement)
	assert.Equal(t, types.LevelSenior, result.ExperienceLevel)
}

func TestCalculateExperienceMatchBelowRequirement(t *testing.T) {
	result := CalculateExperienceMatch("3 years of experience in data engineering", intPtr(7))

	assert.Equal(t, 3, result.CandidateYears)
	assert.False(t, result.MeetsRequirement)
	assert.Equal(t, types.LevelMid, result.ExperienceLevel)
}

func TestCalculateExperienceMatchNoRequirement(t *testing.T) {
	result := CalculateExperienceMatch("fresh graduate, no industry experience yet", nil)

	assert.Equal(t, 0, result.CandidateYears)
	assert.False(t, result.MeetsRequirement, "an unstated requirement cannot be verified as met")
	assert.Nil(t, result.RequiredYears)
	assert.Equal(t, types.LevelEntry, result.ExperienceLevel)
}

func TestCalculateJobMatchScoreNoRequirementHalfCredit(t *testing.T) {
	// Disjoint texts, no skills on either side, no stated requirement:
	// only the half experience credit contributes to the blend.
	result := CalculateJobMatchScore(
		"python backend microservices",
		"marketing outreach campaigns",
		nil, nil, nil,
	)

	assert.False(t, result.ExperienceMatch.MeetsRequirement)
	assert.InDelta(t, 50*experienceShare, result.OverallScore, 1e-9)
	assert.Equal(t, types.MatchPoor, result.MatchLevel)
}

func TestExperienceLevelBuckets(t *testing.T) {
	assert.Equal(t, types.LevelEntry, ExperienceLevel(0))
	assert.Equal(t, types.LevelJunior, ExperienceLevel(1))
	assert.Equal(t, types.LevelMid, ExperienceLevel(2))
	assert.Equal(t, types.LevelMid, ExperienceLevel(4))
	assert.Equal(t, types.LevelSenior, ExperienceLevel(5))
	assert.Equal(t, types.LevelSenior, ExperienceLevel(9))
	assert.Equal(t, types.LevelExpert, ExperienceLevel(10))
}

func TestMatchLevelBuckets(t *testing.T) {
	assert.Equal(t, types.MatchExcellent, MatchLevel(80))
	assert.Equal(t, types.MatchGood, MatchLevel(75))
	assert.Equal(t, types.MatchFair, MatchLevel(60))
	assert.Equal(t, types.MatchPoor, MatchLevel(59.9))
}

func TestCalculateJobMatchScorePerfectCase(t *testing.T) {
	text := "Senior engineer with 8 years of experience in go, docker, and kubernetes"

	result := CalculateJobMatchScore(
		text, text,
		[]string{"go", "docker", "kubernetes"},
		[]string{"go", "docker", "kubernetes"},
		intPtr(5),
	)

	// Identical text, full skill coverage, requirement met.
	assert.InDelta(t, 100.0, result.OverallScore, 1e-9)
	assert.Equal(t, types.MatchExcellent, result.MatchLevel)
	require.Len(t, result.Recommendations, 1)
	assert.Contains(t, result.Recommendations[0], "Strong match")
}

func TestCalculateJobMatchScoreBlend(t *testing.T) {
	result := CalculateJobMatchScore(
		"10 years of experience with python and aws in cloud infrastructure",
		"looking for a java developer with spring and hibernate expertise",
		[]string{"python", "aws"},
		[]string{"java", "spring", "hibernate"},
		intPtr(5),
	)

	expected := result.TextSimilarity.OverallSimilarity*100*similarityShare +
		result.SkillMatch.MatchPercentage*skillShare +
		100*experienceShare
	assert.InDelta(t, expected, result.OverallScore, 1e-9)
	assert.True(t, result.ExperienceMatch.MeetsRequirement)
}

func TestRecommendationsSkillGap(t *testing.T) {
	result := CalculateJobMatchScore(
		"5 years of experience with python",
		"java developer role",
		[]string{"python"},
		[]string{"java", "spring", "hibernate"},
		nil,
	)

	assert.True(t, result.SkillMatch.MatchPercentage < 50)

	var hasSkillRec, hasTrainingRec bool
	for _, rec := range result.Recommendations {
		if strings.Contains(rec, "required skills") {
			hasSkillRec = true
		}
		if strings.Contains(rec, "training") {
			hasTrainingRec = true
		}
	}
	assert.True(t, hasSkillRec)
	assert.True(t, hasTrainingRec)
}

func TestRecommendationsExperienceGap(t *testing.T) {
	result := CalculateJobMatchScore(
		"2 years of experience with go",
		"go developer role",
		[]string{"go"},
		[]string{"go"},
		intPtr(8),
	)

	found := false
	for _, rec := range result.Recommendations {
		if strings.Contains(rec, "6 more years") {
			found = true
		}
	}
	assert.True(t, found, "experience gap should be spelled out")
}

func TestRankCandidatesOrdersByScore(t *testing.T) {
	jobText := "go developer with 3 years of experience in docker and kubernetes"
	candidates := []types.Candidate{
		{Filename: "weak.txt", ResumeText: "marketing specialist", Skills: []string{"seo"}},
		{Filename: "strong.txt", ResumeText: jobText + ", 5 years of experience", Skills: []string{"go", "docker", "kubernetes"}},
		{Filename: "middle.txt", ResumeText: "go developer, 1 year of experience", Skills: []string{"go"}},
	}

	ranked, err := RankCandidates(context.Background(), candidates, jobText, []string{"go", "docker", "kubernetes"}, intPtr(3))
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "strong.txt", ranked[0].Filename)
	assert.Equal(t, "weak.txt", ranked[2].Filename)
	assert.True(t, ranked[0].MatchScore >= ranked[1].MatchScore)
	assert.True(t, ranked[1].MatchScore >= ranked[2].MatchScore)
	require.NotNil(t, ranked[0].Match)
	assert.Equal(t, ranked[0].MatchScore, ranked[0].Match.OverallScore)
}

func TestRankCandidatesStableForEqualScores(t *testing.T) {
	// Identical resumes produce identical scores; input order must hold.
	text := "go developer with 5 years of experience"
	candidates := []types.Candidate{
		{Filename: "first.txt", ResumeText: text, Skills: []string{"go"}},
		{Filename: "second.txt", ResumeText: text, Skills: []string{"go"}},
		{Filename: "third.txt", ResumeText: text, Skills: []string{"go"}},
	}

	ranked, err := RankCandidates(context.Background(), candidates, "go role", []string{"go"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "first.txt", ranked[0].Filename)
	assert.Equal(t, "second.txt", ranked[1].Filename)
	assert.Equal(t, "third.txt", ranked[2].Filename)
}

func TestRankCandidatesEmpty(t *testing.T) {
	ranked, err := RankCandidates(context.Background(), nil, "job", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}
