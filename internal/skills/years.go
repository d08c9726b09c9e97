package skills

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// yearPatterns holds the compiled claim patterns for one skill: the skill
// name before the year count, and the reverse order.
type yearPatterns struct {
	forward *regexp.Regexp
	reverse *regexp.Regexp
}

var (
	yearsMu    sync.Mutex
	yearsCache = make(map[string]yearPatterns)
)

// patternsFor returns the compiled year-claim patterns for a lowercased
// skill name, compiling and caching them on first use. QuoteMeta guarantees
// the assembled patterns are valid, so MustCompile cannot panic here.
func patternsFor(skill string) yearPatterns {
	yearsMu.Lock()
	defer yearsMu.Unlock()

	if p, ok := yearsCache[skill]; ok {
		return p
	}

	quoted := regexp.QuoteMeta(skill)
	p := yearPatterns{
		forward: regexp.MustCompile(quoted + `.*?(\d+)\+?\s*years?`),
		reverse: regexp.MustCompile(`(\d+)\+?\s*years?.*?` + quoted),
	}
	yearsCache[skill] = p
	return p
}

// ExperienceYears estimates the years of experience claimed for a specific
// skill, from phrasings like "Python (5 years)" or "5+ years of Python".
// Returns 0 when no claim is found.
func ExperienceYears(text, skill string) int {
	textLower := strings.ToLower(text)
	p := patternsFor(strings.ToLower(skill))

	for _, re := range []*regexp.Regexp{p.forward, p.reverse} {
		if m := re.FindStringSubmatch(textLower); m != nil {
			years, err := strconv.Atoi(m[1])
			if err == nil {
				return years
			}
		}
	}
	return 0
}
