// Package skills matches resume text against the skill catalog and derives
// categorization, coverage and summary statistics from the matches.
package skills

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Matcher scans text for catalog skills using case-insensitive whole-word
// matching. Patterns are compiled once at construction; a Matcher is
// read-only afterward and safe for concurrent use.
type Matcher struct {
	catalog  *catalog.Catalog
	patterns map[string]*regexp.Regexp // catalog key -> compiled word-boundary pattern
}

// NewMatcher compiles a word-boundary pattern per catalog entry.
func NewMatcher(c *catalog.Catalog) (*Matcher, error) {
	m := &Matcher{
		catalog:  c,
		patterns: make(map[string]*regexp.Regexp, c.Len()),
	}
	for _, key := range c.Keys() {
		re, err := regexp.Compile(wordPattern(key))
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern for skill %q: %w", key, err)
		}
		m.patterns[key] = re
	}
	return m, nil
}

// wordPattern builds a case-insensitive pattern matching key as a whole
// word. \b only works next to word characters, so skills that start or end
// with symbols (c++, c#) get that side's boundary dropped.
func wordPattern(key string) string {
	pattern := `(?i)`
	if isWordChar(key[0]) {
		pattern += `\b`
	}
	pattern += regexp.QuoteMeta(key)
	if isWordChar(key[len(key)-1]) {
		pattern += `\b`
	}
	return pattern
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// Extract returns every catalog skill found in text at least once.
// Results follow catalog insertion order, not occurrence order, so output is
// deterministic for a given catalog.
func (m *Matcher) Extract(text string) []types.ExtractedSkill {
	var found []types.ExtractedSkill
	for _, key := range m.catalog.Keys() {
		if !m.patterns[key].MatchString(text) {
			continue
		}
		rec, _ := m.catalog.Lookup(key)
		found = append(found, types.ExtractedSkill{
			Name:     rec.Name,
			Category: rec.Category,
			Weight:   rec.Weight,
		})
	}
	return found
}

// Categorize groups found skill names by category, preserving first-seen
// order within each category.
func (m *Matcher) Categorize(found []types.ExtractedSkill) map[string][]string {
	categorized := make(map[string][]string)
	for _, s := range found {
		categorized[s.Category] = append(categorized[s.Category], s.Name)
	}
	return categorized
}

// Statistics computes aggregate statistics over extracted skills.
// An empty input yields a zero-valued record rather than an error.
func (m *Matcher) Statistics(found []types.ExtractedSkill) types.SkillStatistics {
	if len(found) == 0 {
		return types.SkillStatistics{CategoryDistribution: map[string]int{}, TopSkills: []string{}}
	}

	distribution := make(map[string]int)
	weightSum := 0.0
	for _, s := range found {
		distribution[s.Category]++
		weightSum += s.Weight
	}

	// Stable sort: ties keep catalog order.
	sorted := make([]types.ExtractedSkill, len(found))
	copy(sorted, found)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight > sorted[j].Weight
	})

	top := make([]string, 0, 10)
	for _, s := range sorted {
		top = append(top, s.Name)
		if len(top) == 10 {
			break
		}
	}

	return types.SkillStatistics{
		TotalSkills:          len(found),
		UniqueCategories:     len(distribution),
		CategoryDistribution: distribution,
		AverageWeight:        weightSum / float64(len(found)),
		TopSkills:            top,
	}
}

// Coverage computes how well found skills cover a required list. Coverage is
// 0 when required is empty (by convention). Output slices are sorted
// alphabetically for deterministic serialization.
func (m *Matcher) Coverage(found []types.ExtractedSkill, required []string) types.SkillCoverage {
	foundSet := make(map[string]bool, len(found))
	for _, s := range found {
		foundSet[catalog.Key(s.Name)] = true
	}

	requiredSet := make(map[string]bool, len(required))
	for _, name := range required {
		if key := catalog.Key(name); key != "" {
			requiredSet[key] = true
		}
	}

	var matched, missing []string
	for name := range requiredSet {
		if foundSet[name] {
			matched = append(matched, name)
		} else {
			missing = append(missing, name)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	coverage := 0.0
	if len(requiredSet) > 0 {
		coverage = float64(len(matched)) / float64(len(requiredSet)) * 100
	}

	return types.SkillCoverage{
		CoveragePercentage: coverage,
		MatchedSkills:      matched,
		MissingSkills:      missing,
	}
}

// Recommend suggests up to 10 complementary high-value skills (weight >= 0.8)
// from the categories the candidate already has, skipping skills already found.
// Order follows the catalog.
func (m *Matcher) Recommend(found []types.ExtractedSkill) []string {
	haveSkill := make(map[string]bool, len(found))
	haveCategory := make(map[string]bool)
	for _, s := range found {
		haveSkill[catalog.Key(s.Name)] = true
		haveCategory[s.Category] = true
	}

	var recommendations []string
	for _, rec := range m.catalog.Records() {
		if !haveCategory[rec.Category] || haveSkill[catalog.Key(rec.Name)] {
			continue
		}
		if rec.Weight >= 0.8 {
			recommendations = append(recommendations, rec.Name)
			if len(recommendations) == 10 {
				break
			}
		}
	}
	return recommendations
}
