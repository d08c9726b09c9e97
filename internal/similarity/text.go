// Package similarity computes text and skill-set similarity between resumes
// and job descriptions. All functions are pure and safe for concurrent use.
package similarity

import "strings"

// stopWords are common English words ignored during tokenization.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "has": true, "he": true,
	"in": true, "is": true, "it": true, "its": true, "of": true, "on": true,
	"that": true, "the": true, "to": true, "was": true, "will": true,
	"with": true, "this": true, "but": true, "they": true, "have": true,
	"had": true, "what": true, "when": true, "where": true, "who": true,
	"which": true, "why": true, "how": true,
}

// Tokenize lowercases text, replaces every character outside [a-z0-9 ] with a
// space, splits on whitespace, and drops stop words and tokens of length <= 2.
// Token order is preserved for diagnostics; the similarity math below only
// uses counts and sets.
func Tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	var tokens []string
	for _, tok := range strings.Fields(b.String()) {
		if len(tok) <= 2 || stopWords[tok] {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// termFrequencies builds a normalized term-frequency vector: each term maps
// to its count divided by the total token count. Empty input yields an empty
// vector.
func termFrequencies(tokens []string) map[string]float64 {
	freq := make(map[string]float64, len(tokens))
	if len(tokens) == 0 {
		return freq
	}
	for _, tok := range tokens {
		freq[tok]++
	}
	total := float64(len(tokens))
	for tok := range freq {
		freq[tok] /= total
	}
	return freq
}

// tokenSet converts a token list into a membership set.
func tokenSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		set[tok] = true
	}
	return set
}
