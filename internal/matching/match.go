// Package matching scores a resume against a specific job description,
// combining text similarity, skill coverage, and experience fit into a
// single match score with actionable recommendations.
package matching

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/similarity"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Blend weights for the overall match score. Similarity is on a [0, 1]
// scale and is rescaled to 100 before blending.
const (
	similarityShare = 0.25
	skillShare      = 0.50
	experienceShare = 0.25
)

// experiencePoints converts the boolean experience check into blend points:
// full credit when the requirement is met, half credit otherwise.
func experiencePoints(meets bool) float64 {
	if meets {
		return 100
	}
	return 50
}

// CalculateExperienceMatch compares the years of experience claimed in the
// resume against the job's requirement. requiredYears may be nil when the
// posting does not state one; with no requirement to verify, the match is
// never credited as met and the blend keeps only half the experience points.
func CalculateExperienceMatch(resumeText string, requiredYears *int) types.ExperienceMatch {
	years := parsing.ExperienceYears(resumeText)

	meets := false
	if requiredYears != nil {
		meets = years >= *requiredYears
	}

	return types.ExperienceMatch{
		CandidateYears:   years,
		RequiredYears:    requiredYears,
		MeetsRequirement: meets,
		ExperienceLevel:  ExperienceLevel(years),
	}
}

// ExperienceLevel buckets a year count into a seniority label.
func ExperienceLevel(years int) string {
	switch {
	case years >= 10:
		return types.LevelExpert
	case years >= 5:
		return types.LevelSenior
	case years >= 2:
		return types.LevelMid
	case years >= 1:
		return types.LevelJunior
	default:
		return types.LevelEntry
	}
}

// MatchLevel maps an overall match score to a qualitative label.
func MatchLevel(score float64) string {
	switch {
	case score >= 80:
		return types.MatchExcellent
	case score >= 70:
		return types.MatchGood
	case score >= 60:
		return types.MatchFair
	default:
		return types.MatchPoor
	}
}

// CalculateJobMatchScore produces the full resume-to-job comparison:
// blended score, qualitative level, and recommendations. requiredYears may
// be nil.
func CalculateJobMatchScore(
	resumeText, jobText string,
	resumeSkills, jobSkills []string,
	requiredYears *int,
) types.JobMatchResult {
	sim := similarity.CalculateTextSimilarity(resumeText, jobText)
	skillMatch := similarity.CalculateSkillMatch(resumeSkills, jobSkills)
	expMatch := CalculateExperienceMatch(resumeText, requiredYears)

	overall := sim.OverallSimilarity*100*similarityShare +
		skillMatch.MatchPercentage*skillShare +
		experiencePoints(expMatch.MeetsRequirement)*experienceShare

	return types.JobMatchResult{
		OverallScore:    overall,
		MatchLevel:      MatchLevel(overall),
		TextSimilarity:  sim,
		SkillMatch:      skillMatch,
		ExperienceMatch: expMatch,
		Recommendations: buildRecommendations(overall, skillMatch, expMatch),
	}
}

// buildRecommendations applies each advice rule independently, in a fixed
// order, falling back to a positive note only when nothing else fired.
func buildRecommendations(overall float64, skillMatch types.SkillMatchResult, expMatch types.ExperienceMatch) []string {
	var recs []string

	if skillMatch.MatchPercentage < 70 && len(skillMatch.MissingSkills) > 0 {
		shown := skillMatch.MissingSkills
		if len(shown) > 5 {
			shown = shown[:5]
		}
		recs = append(recs, fmt.Sprintf("Develop or highlight these required skills: %s", strings.Join(shown, ", ")))
	}
	if skillMatch.MatchPercentage < 50 {
		recs = append(recs, "Consider additional training before applying; the skill gap is significant")
	}
	if !expMatch.MeetsRequirement && expMatch.RequiredYears != nil {
		gap := *expMatch.RequiredYears - expMatch.CandidateYears
		recs = append(recs, fmt.Sprintf("The role asks for %d more years of experience than your resume shows", gap))
	}
	if overall < 60 {
		recs = append(recs, "Overall fit is weak; tailor your resume to this role or consider similar positions")
	} else if overall < 80 {
		recs = append(recs, "Highlight your most relevant experience near the top of the resume")
	}

	if len(recs) == 0 {
		recs = append(recs, "Strong match; apply with your resume as is")
	}
	return recs
}
