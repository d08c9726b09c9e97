package types

// ATSScoreResult holds the outcome of a single ATS compatibility evaluation.
// Created fresh per scoring call and read-only once returned.
type ATSScoreResult struct {
	OverallScore    float64            `json:"overall_score"`  // Weighted blend in [0, 100]
	SectionScores   map[string]float64 `json:"section_scores"` // Per sub-scorer, each in [0, 100]
	Recommendations []string           `json:"recommendations"`
	Strengths       []string           `json:"strengths"`  // Sub-scores >= 80
	Weaknesses      []string           `json:"weaknesses"` // Sub-scores < 60
	KeywordMatches  int                `json:"keyword_matches"`
	KeywordTotal    int                `json:"keyword_total"` // 0 exactly when no required keywords were supplied
}
