// Package ats evaluates resume text for Applicant Tracking System
// compatibility. Five independent sub-scorers each produce a score in
// [0, 100] plus recommendations; a fixed weighted blend yields the overall
// score.
package ats

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Fixed blend weights per sub-scorer. When no required keywords are
// supplied, the keywords component contributes 0 and the overall score is
// attenuated rather than renormalized; callers detect that case by
// KeywordTotal == 0.
const (
	formattingWeight = 0.15
	keywordsWeight   = 0.30
	experienceWeight = 0.20
	educationWeight  = 0.15
	skillsWeight     = 0.20
)

// DefaultSkillTarget is the extracted-skill count at which the skills
// sub-score saturates at 100.
const DefaultSkillTarget = 10

// Calculator computes ATS compatibility scores. It is stateless apart from
// configuration and safe for concurrent use.
type Calculator struct {
	skillTarget int
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithSkillTarget overrides the skill count at which the skills sub-score
// saturates.
func WithSkillTarget(n int) Option {
	return func(c *Calculator) {
		if n > 0 {
			c.skillTarget = n
		}
	}
}

// NewCalculator creates a Calculator with default configuration.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{skillTarget: DefaultSkillTarget}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CalculateScore evaluates a resume. requiredKeywords may be empty, in which
// case keyword scoring is skipped entirely. sections is accepted for parity
// with the section-extraction collaborator but the sub-scorers re-derive
// section presence from the full text, so scoring still works when section
// splitting fails.
func (c *Calculator) CalculateScore(
	resumeText string,
	extractedSkills []types.ExtractedSkill,
	requiredKeywords []string,
	sections map[string]string,
) types.ATSScoreResult {
	_ = sections

	scores := make(map[string]float64, 5)
	var recommendations []string

	formatScore, formatRecs := scoreFormatting(resumeText)
	scores["formatting"] = formatScore
	recommendations = append(recommendations, formatRecs...)

	keywordMatches := 0
	keywordScore := 0.0
	if len(requiredKeywords) > 0 {
		var keywordRecs []string
		keywordScore, keywordMatches, keywordRecs = scoreKeywords(resumeText, requiredKeywords)
		scores["keywords"] = keywordScore
		recommendations = append(recommendations, keywordRecs...)
	}

	expScore, expRecs := scoreExperience(resumeText)
	scores["experience"] = expScore
	recommendations = append(recommendations, expRecs...)

	eduScore, eduRecs := scoreEducation(resumeText)
	scores["education"] = eduScore
	recommendations = append(recommendations, eduRecs...)

	skillsScore, skillsRecs := c.scoreSkills(extractedSkills)
	scores["skills"] = skillsScore
	recommendations = append(recommendations, skillsRecs...)

	overall := formatScore*formattingWeight +
		keywordScore*keywordsWeight +
		expScore*experienceWeight +
		eduScore*educationWeight +
		skillsScore*skillsWeight

	var strengths, weaknesses []string
	for _, component := range []string{"formatting", "keywords", "experience", "education", "skills"} {
		score, evaluated := scores[component]
		if !evaluated {
			continue
		}
		switch {
		case score >= 80:
			strengths = append(strengths, fmt.Sprintf("%s: Excellent", title(component)))
		case score < 60:
			weaknesses = append(weaknesses, fmt.Sprintf("%s: Needs improvement", title(component)))
		}
	}

	return types.ATSScoreResult{
		OverallScore:    overall,
		SectionScores:   scores,
		Recommendations: recommendations,
		Strengths:       strengths,
		Weaknesses:      weaknesses,
		KeywordMatches:  keywordMatches,
		KeywordTotal:    len(requiredKeywords),
	}
}

// Grade maps an overall score to a letter grade using the standard
// 90/80/70/60 banding.
func Grade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// title uppercases the first letter of an ASCII component name.
func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// clamp floors a score at zero. Sub-scorers start at 100 and only deduct,
// so no upper clamp is needed.
func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	return score
}
