package similarity

import (
	"math"
	"sort"

	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Blend weights for the overall similarity score. Fixed constants; they sum to 1.0.
const (
	cosineWeight  = 0.4
	jaccardWeight = 0.3
	overlapWeight = 0.3
)

// Cosine computes cosine similarity between two term-frequency vectors.
// Returns 0 when either vector has zero magnitude; that is a defined edge
// case for empty inputs, not a failure.
func Cosine(vec1, vec2 map[string]float64) float64 {
	dot := 0.0
	for term, v1 := range vec1 {
		if v2, ok := vec2[term]; ok {
			dot += v1 * v2
		}
	}

	mag1 := 0.0
	for _, v := range vec1 {
		mag1 += v * v
	}
	mag2 := 0.0
	for _, v := range vec2 {
		mag2 += v * v
	}

	if mag1 == 0 || mag2 == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(mag1) * math.Sqrt(mag2))
}

// Jaccard computes |intersection| / |union| over two token sets.
// Returns 0 when the union is empty.
func Jaccard(set1, set2 map[string]bool) float64 {
	intersection := 0
	for tok := range set1 {
		if set2[tok] {
			intersection++
		}
	}
	union := len(set1) + len(set2) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

// CalculateTextSimilarity computes the blended similarity between a resume
// and a job description. The overlap component is asymmetric by design: it
// measures what fraction of job terms appear in the resume.
func CalculateTextSimilarity(resumeText, jobText string) types.SimilarityResult {
	resumeTokens := Tokenize(resumeText)
	jobTokens := Tokenize(jobText)

	cosine := Cosine(termFrequencies(resumeTokens), termFrequencies(jobTokens))

	resumeSet := tokenSet(resumeTokens)
	jobSet := tokenSet(jobTokens)
	jaccard := Jaccard(resumeSet, jobSet)

	overlap := 0.0
	if len(jobSet) > 0 {
		matched := 0
		for tok := range jobSet {
			if resumeSet[tok] {
				matched++
			}
		}
		overlap = float64(matched) / float64(len(jobSet))
	}

	return types.SimilarityResult{
		CosineSimilarity:  cosine,
		JaccardSimilarity: jaccard,
		OverlapScore:      overlap,
		OverallSimilarity: cosine*cosineWeight + jaccard*jaccardWeight + overlap*overlapWeight,
	}
}

// CalculateSkillMatch computes the overlap between resume skills and job
// skills over lowercased name sets. Output slices are sorted alphabetically
// so serialization is deterministic.
func CalculateSkillMatch(resumeSkills, jobSkills []string) types.SkillMatchResult {
	resumeSet := nameSet(resumeSkills)
	jobSet := nameSet(jobSkills)

	var matched, missing, extra []string
	for name := range jobSet {
		if resumeSet[name] {
			matched = append(matched, name)
		} else {
			missing = append(missing, name)
		}
	}
	for name := range resumeSet {
		if !jobSet[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	sort.Strings(extra)

	matchPercentage := 0.0
	if len(jobSet) > 0 {
		matchPercentage = float64(len(matched)) / float64(len(jobSet)) * 100
	}

	return types.SkillMatchResult{
		MatchPercentage: matchPercentage,
		MatchedSkills:   matched,
		MissingSkills:   missing,
		ExtraSkills:     extra,
		MatchedCount:    len(matched),
		RequiredCount:   len(jobSet),
	}
}

// nameSet lowercases and whitespace-normalizes skill names into a set,
// dropping empties.
func nameSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		if key := catalog.Key(name); key != "" {
			set[key] = true
		}
	}
	return set
}
