package ats

import (
	"github.com/jonathan/resume-analyzer/internal/types"
)

// scoreSkills ramps linearly with the number of extracted skills and
// saturates at the configured target. This approximates breadth of a skills
// section without judging individual skill quality.
func (c *Calculator) scoreSkills(skills []types.ExtractedSkill) (float64, []string) {
	count := len(skills)
	score := float64(count) / float64(c.skillTarget) * 100
	if score > 100 {
		score = 100
	}

	var recs []string
	if count < c.skillTarget {
		recs = append(recs, "List more relevant technical and professional skills")
	}
	return score, recs
}
