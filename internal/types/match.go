package types

// Experience level labels, bucketed from the candidate's estimated years.
const (
	LevelEntry  = "Entry Level"
	LevelJunior = "Junior"
	LevelMid    = "Mid-Level"
	LevelSenior = "Senior"
	LevelExpert = "Senior/Expert"
)

// Match level labels for the blended job-fit score.
const (
	MatchPoor      = "Poor Match"
	MatchFair      = "Fair Match"
	MatchGood      = "Good Match"
	MatchExcellent = "Excellent Match"
)

// ExperienceMatch reports the candidate's estimated experience against a job requirement.
type ExperienceMatch struct {
	CandidateYears   int    `json:"candidate_years"` // 0 means "not found"
	RequiredYears    *int   `json:"required_years,omitempty"`
	MeetsRequirement bool   `json:"meets_requirement"`
	ExperienceLevel  string `json:"experience_level"`
}

// JobMatchResult is the blended job-fit score for one candidate against one posting.
type JobMatchResult struct {
	OverallScore    float64          `json:"overall_score"` // [0, 100]
	MatchLevel      string           `json:"match_level"`
	TextSimilarity  SimilarityResult `json:"text_similarity"`
	SkillMatch      SkillMatchResult `json:"skill_match"`
	ExperienceMatch ExperienceMatch  `json:"experience_match"`
	Recommendations []string         `json:"recommendations"`
}

// Candidate is one resume entered into a multi-candidate comparison.
type Candidate struct {
	Filename   string   `json:"filename"`
	ResumeText string   `json:"-"` // Raw text; never serialized
	Skills     []string `json:"skills"` // Extracted skill display names, catalog order
}

// RankedCandidate is a candidate annotated with its job match outcome.
type RankedCandidate struct {
	Candidate
	MatchScore float64         `json:"match_score"`
	MatchLevel string          `json:"match_level"`
	Match      *JobMatchResult `json:"match,omitempty"`
}
