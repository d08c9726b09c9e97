// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable ATS compatibility report.
func (p *Printer) PrintAnalysis(analysis *analyzer.Analysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:  %.1f (grade %s)\n", analysis.ATSScore.OverallScore, analysis.Grade))
	sb.WriteString("\n")

	sb.WriteString("Section Scores:\n")
	for _, section := range []string{"formatting", "keywords", "experience", "education", "skills"} {
		score, evaluated := analysis.ATSScore.SectionScores[section]
		if !evaluated {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %-12s %.1f\n", section, score))
	}

	if analysis.ATSScore.KeywordTotal > 0 {
		sb.WriteString(fmt.Sprintf("\nKeywords: %d/%d matched\n",
			analysis.ATSScore.KeywordMatches, analysis.ATSScore.KeywordTotal))
	}

	if len(analysis.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("\nSkills found: %d\n", len(analysis.Skills)))
		count := min(len(analysis.Skills), maxItemsToShow)
		names := make([]string, 0, count)
		for i := 0; i < count; i++ {
			names = append(names, analysis.Skills[i].Name)
		}
		joined := strings.Join(names, ", ")
		if len(joined) > 45 {
			joined = joined[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", joined))
		if len(analysis.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.Skills)-maxItemsToShow))
		}
	}

	if len(analysis.ATSScore.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(analysis.ATSScore.Recommendations), maxItemsToShow)
		for i := 0; i < count; i++ {
			rec := analysis.ATSScore.Recommendations[i]
			if len(rec) > 50 {
				rec = rec[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
		if len(analysis.ATSScore.Recommendations) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.ATSScore.Recommendations)-maxItemsToShow))
		}
	}

	p.printBox("ATS COMPATIBILITY REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobMatch outputs the resume-to-job comparison result.
func (p *Printer) PrintJobMatch(result *types.JobMatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:    %.1f (%s)\n", result.OverallScore, result.MatchLevel))
	sb.WriteString(fmt.Sprintf("Text similarity:  %.2f\n", result.TextSimilarity.OverallSimilarity))
	sb.WriteString(fmt.Sprintf("Skill match:      %.1f%%\n", result.SkillMatch.MatchPercentage))
	sb.WriteString(fmt.Sprintf("Experience:       %d years (%s)\n",
		result.ExperienceMatch.CandidateYears, result.ExperienceMatch.ExperienceLevel))

	if len(result.SkillMatch.MissingSkills) > 0 {
		sb.WriteString("\nMissing skills:\n")
		count := min(len(result.SkillMatch.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.SkillMatch.MissingSkills[i]))
		}
		if len(result.SkillMatch.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.SkillMatch.MissingSkills)-maxItemsToShow))
		}
	}

	if len(result.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for _, rec := range result.Recommendations {
			if len(rec) > 50 {
				rec = rec[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	p.printBox("JOB MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedCandidates outputs the top candidates from a comparison.
func (p *Printer) PrintRankedCandidates(ranked []types.RankedCandidate) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates compared: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		candidate := ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, candidate.Filename))
		sb.WriteString(fmt.Sprintf("    Score: %.1f (%s)\n", candidate.MatchScore, candidate.MatchLevel))
		if len(candidate.Skills) > 0 {
			skills := strings.Join(candidate.Skills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(ranked)-maxItemsToShow))
	}

	p.printBox("CANDIDATE RANKING", sb.String())
}
