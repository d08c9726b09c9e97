// Package parsing provides the regex heuristics that pull structured facts
// out of raw resume text: contact details, degrees, dates and experience
// claims. Each extractor is a small named function returning an optional
// value, so the fuzzy part of the system stays isolated and testable.
package parsing

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`(?:\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\d{10}`),
	}
)

// ExtractEmail returns the first email address in text, or "" if none.
func ExtractEmail(text string) string {
	return emailRe.FindString(text)
}

// ExtractPhone returns the first phone-number-shaped substring in text, or "".
// Patterns are tried most-specific first.
func ExtractPhone(text string) string {
	for _, re := range phoneRes {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

// ExtractName guesses the candidate name from the first three non-empty
// lines: 2-4 words, each starting with an uppercase letter, no digits.
// Returns "" when no line qualifies.
func ExtractName(text string) string {
	lines := strings.Split(text, "\n")
	checked := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		checked++
		if checked > 3 {
			break
		}
		if strings.ContainsFunc(line, unicode.IsDigit) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		allCapitalized := true
		for _, w := range words {
			r := []rune(w)[0]
			if !unicode.IsUpper(r) {
				allCapitalized = false
				break
			}
		}
		if allCapitalized {
			return line
		}
	}
	return ""
}

// ExtractContactInfo bundles the three contact extractors.
func ExtractContactInfo(text string) types.ContactInfo {
	return types.ContactInfo{
		Name:  ExtractName(text),
		Email: ExtractEmail(text),
		Phone: ExtractPhone(text),
	}
}
