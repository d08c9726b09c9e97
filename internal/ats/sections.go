package ats

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/parsing"
)

var experienceHeaders = []string{"experience", "employment", "work history"}

var actionVerbs = []string{
	"achieved", "automated", "built", "created", "delivered", "designed",
	"developed", "implemented", "improved", "increased", "launched", "led",
	"managed", "optimized", "reduced",
}

// Quantifiable achievements: percentages, dollar amounts, or "N+" counts.
var quantifiableRes = []*regexp.Regexp{
	regexp.MustCompile(`\d+(?:\.\d+)?%`),
	regexp.MustCompile(`\$\d`),
	regexp.MustCompile(`\b\d+\+`),
}

var yearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)

var degreeKeywords = []string{
	"bachelor", "master", "phd", "doctorate",
	"b.s.", "m.s.", "b.a.", "m.a.", "mba", "degree",
}

// scoreExperience checks for a work history section with dated entries,
// action-oriented language, and quantified results.
func scoreExperience(text string) (float64, []string) {
	score := 100.0
	var recs []string

	lower := strings.ToLower(text)

	hasSection := false
	for _, header := range experienceHeaders {
		if strings.Contains(lower, header) {
			hasSection = true
			break
		}
	}
	if !hasSection {
		score -= 50
		recs = append(recs, "Add a dedicated work experience section")
		return clamp(score), recs
	}

	if !parsing.HasDateRange(text) {
		score -= 20
		recs = append(recs, "Include date ranges for each position, such as 2020-2023 or Jan 2020 - Present")
	}

	verbCount := 0
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			verbCount++
		}
	}
	if verbCount < 5 {
		score -= 15
		recs = append(recs, "Start bullet points with action verbs such as led, built, or improved")
	}

	quantified := false
	for _, re := range quantifiableRes {
		if re.MatchString(text) {
			quantified = true
			break
		}
	}
	if !quantified {
		score -= 15
		recs = append(recs, "Quantify achievements with numbers, percentages, or dollar amounts")
	}

	return clamp(score), recs
}

// scoreEducation checks for an education section with a recognizable degree
// and graduation year. A missing GPA only generates a recommendation.
func scoreEducation(text string) (float64, []string) {
	score := 100.0
	var recs []string

	lower := strings.ToLower(text)

	if !strings.Contains(lower, "education") {
		score -= 40
		recs = append(recs, "Add an education section")
		return clamp(score), recs
	}

	hasDegree := false
	for _, keyword := range degreeKeywords {
		if strings.Contains(lower, keyword) {
			hasDegree = true
			break
		}
	}
	if !hasDegree {
		score -= 30
		recs = append(recs, "Name your degree, for example Bachelor of Science or MBA")
	}

	if !yearRe.MatchString(text) {
		score -= 20
		recs = append(recs, "Include your graduation year")
	}

	if !strings.Contains(lower, "gpa") {
		recs = append(recs, "Consider adding your GPA if it is 3.5 or higher")
	}

	return clamp(score), recs
}
