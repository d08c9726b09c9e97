package types

// SimilarityResult holds the text-similarity scores between a resume and a job description.
// All values are in [0, 1].
type SimilarityResult struct {
	CosineSimilarity  float64 `json:"cosine_similarity"`
	JaccardSimilarity float64 `json:"jaccard_similarity"`
	OverlapScore      float64 `json:"overlap_score"`      // Fraction of job terms found in the resume (asymmetric)
	OverallSimilarity float64 `json:"overall_similarity"` // 0.4*cosine + 0.3*jaccard + 0.3*overlap
}

// SkillMatchResult reports the overlap between resume skills and job skills.
// Skill name slices are lowercase and sorted alphabetically.
type SkillMatchResult struct {
	MatchPercentage float64  `json:"match_percentage"` // |matched| / |required| * 100
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	ExtraSkills     []string `json:"extra_skills"`
	MatchedCount    int      `json:"matched_count"`
	RequiredCount   int      `json:"required_count"`
}
