package ats

import (
	"fmt"
	"strings"
)

// maxSuggestedKeywords caps how many missing keywords a single
// recommendation lists.
const maxSuggestedKeywords = 5

// keywordDensityLimit is the percentage of total words above which keyword
// repetition looks like stuffing.
const keywordDensityLimit = 5.0

// scoreKeywords measures how many required keywords appear in the resume as
// case-insensitive substrings. The base score is the match percentage, with
// a deduction when keyword density suggests stuffing.
func scoreKeywords(text string, required []string) (score float64, matches int, recs []string) {
	lower := strings.ToLower(text)

	var missing []string
	for _, keyword := range required {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			matches++
		} else {
			missing = append(missing, keyword)
		}
	}

	matchPct := float64(matches) / float64(len(required)) * 100
	score = matchPct

	if matchPct < 70 && len(missing) > 0 {
		suggest := missing
		if len(suggest) > maxSuggestedKeywords {
			suggest = suggest[:maxSuggestedKeywords]
		}
		recs = append(recs, fmt.Sprintf("Include missing keywords: %s", strings.Join(suggest, ", ")))
	}

	wordCount := len(strings.Fields(text))
	if wordCount > 0 {
		density := float64(matches) / float64(wordCount) * 100
		if density > keywordDensityLimit {
			score -= 10
			recs = append(recs, "Keyword density is high; rephrase to avoid keyword stuffing")
		}
	}

	return clamp(score), matches, recs
}
