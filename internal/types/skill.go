// Package types provides type definitions for structured data used throughout the resume-analyzer system.
package types

// SkillRecord represents a single skill in the skill catalog.
type SkillRecord struct {
	Name     string  `json:"skill"`    // Canonical display form, e.g. "Node.js"
	Category string  `json:"category"` // e.g. "Web Development"
	Weight   float64 `json:"weight"`   // Market relevance weight in [0, 1]
}

// ExtractedSkill represents a catalog skill found in a resume.
// It is a transient value created per analysis call and never persisted.
type ExtractedSkill struct {
	Name     string  `json:"skill"`
	Category string  `json:"category"`
	Weight   float64 `json:"weight"`
}

// SkillStatistics summarizes the skills extracted from a single resume.
type SkillStatistics struct {
	TotalSkills          int            `json:"total_skills"`
	UniqueCategories     int            `json:"unique_categories"`
	CategoryDistribution map[string]int `json:"category_distribution"`
	AverageWeight        float64        `json:"average_weight"`
	TopSkills            []string       `json:"top_skills"` // Up to 10 names, sorted by weight descending
}

// SkillCoverage reports how well a resume covers a required skill list.
type SkillCoverage struct {
	CoveragePercentage float64  `json:"coverage_percentage"` // |matched| / |required| * 100
	MatchedSkills      []string `json:"matched_skills"`      // Lowercase names, sorted alphabetically
	MissingSkills      []string `json:"missing_skills"`      // Lowercase names, sorted alphabetically
}
