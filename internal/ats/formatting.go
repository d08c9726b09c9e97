package ats

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/parsing"
)

// Glyphs that commonly break ATS text extraction. Plain hyphens and
// asterisks are fine; decorated bullets are not.
var problematicGlyphs = []string{"•", "●", "◦", "★", "◆", "■", "▪", "▲", "➤", "✓"}

var sectionHeaders = []string{"experience", "education", "skills", "summary"}

// scoreFormatting checks structural properties that affect machine
// readability: length, special characters, table-like layout, contact
// details, and recognizable section headers.
func scoreFormatting(text string) (float64, []string) {
	score := 100.0
	var recs []string

	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(text))

	switch {
	case wordCount < 300:
		score -= 20
		recs = append(recs, "Resume appears too short; aim for at least 300 words")
	case wordCount > 3000:
		score -= 15
		recs = append(recs, "Resume appears too long; trim to under 3000 words")
	}

	for _, glyph := range problematicGlyphs {
		if strings.Contains(text, glyph) {
			score -= 10
			recs = append(recs, "Replace special bullet characters with plain hyphens or asterisks")
			break
		}
	}

	if strings.ContainsAny(text, "\t|") {
		score -= 10
		recs = append(recs, "Avoid tables and column layouts; many ATS parsers read them out of order")
	}

	if parsing.ExtractEmail(text) == "" {
		score -= 15
		recs = append(recs, "Add an email address to your contact information")
	}
	if parsing.ExtractPhone(text) == "" {
		score -= 10
		recs = append(recs, "Add a phone number to your contact information")
	}

	found := 0
	for _, header := range sectionHeaders {
		if strings.Contains(lower, header) {
			found++
		}
	}
	if found < 3 {
		score -= 15
		recs = append(recs, "Use standard section headers such as Experience, Education, Skills, and Summary")
	}

	return clamp(score), recs
}
