package types

// ContactInfo holds contact details pulled out of a resume by regex heuristics.
// Empty fields mean "not found".
type ContactInfo struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// StructuredData is the heuristic structured view of a resume used by the API layer.
type StructuredData struct {
	Name            string   `json:"name,omitempty"`
	Email           string   `json:"email,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Education       []string `json:"education"`        // Degree mentions in order of first appearance
	ExperienceYears int      `json:"experience_years"` // 0 means "not found"
}
