// Package analyzer wires the catalog, skill matcher, scoring, and matching
// components into the operations the CLI and HTTP server expose.
package analyzer

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/ats"
	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Analyzer bundles the shared, read-only components every analysis needs.
// It is safe for concurrent use.
type Analyzer struct {
	catalog *catalog.Catalog
	matcher *skills.Matcher
	calc    *ats.Calculator
}

// New creates an Analyzer over the given skill catalog.
func New(cat *catalog.Catalog, opts ...ats.Option) (*Analyzer, error) {
	matcher, err := skills.NewMatcher(cat)
	if err != nil {
		return nil, err
	}
	return &Analyzer{
		catalog: cat,
		matcher: matcher,
		calc:    ats.NewCalculator(opts...),
	}, nil
}

// Catalog returns the skill catalog backing this analyzer.
func (a *Analyzer) Catalog() *catalog.Catalog {
	return a.catalog
}

// Analysis is the complete result of analyzing one resume.
type Analysis struct {
	ID                string                 `json:"analysis_id"`
	Filename          string                 `json:"filename,omitempty"`
	AnalyzedAt        time.Time              `json:"analyzed_at"`
	ATSScore          types.ATSScoreResult   `json:"ats_score"`
	Grade             string                 `json:"grade"`
	Skills            []types.ExtractedSkill `json:"skills"`
	SkillStatistics   types.SkillStatistics  `json:"skill_statistics"`
	SkillYears        map[string]int         `json:"skill_years,omitempty"`
	RecommendedSkills []string               `json:"recommended_skills"`
	StructuredData    types.StructuredData   `json:"structured_data"`
}

// AnalyzeText runs the full analysis pipeline over already-extracted resume
// text. requiredKeywords may be empty.
func (a *Analyzer) AnalyzeText(resumeText string, requiredKeywords []string) Analysis {
	extracted := a.matcher.Extract(resumeText)
	score := a.calc.CalculateScore(resumeText, extracted, requiredKeywords, nil)

	// Per-skill experience claims, recorded only where the resume states one.
	skillYears := make(map[string]int)
	for _, skill := range extracted {
		if years := skills.ExperienceYears(resumeText, skill.Name); years > 0 {
			skillYears[skill.Name] = years
		}
	}
	if len(skillYears) == 0 {
		skillYears = nil
	}

	return Analysis{
		ID:                uuid.NewString(),
		AnalyzedAt:        time.Now().UTC(),
		ATSScore:          score,
		Grade:             ats.Grade(score.OverallScore),
		Skills:            extracted,
		SkillStatistics:   a.matcher.Statistics(extracted),
		SkillYears:        skillYears,
		RecommendedSkills: a.matcher.Recommend(extracted),
		StructuredData:    parsing.ExtractStructuredData(resumeText),
	}
}

// AnalyzeDocument extracts text from an uploaded document and analyzes it.
func (a *Analyzer) AnalyzeDocument(data []byte, filename string, requiredKeywords []string) (Analysis, error) {
	text, err := ingestion.ExtractText(data, filename)
	if err != nil {
		return Analysis{}, err
	}
	analysis := a.AnalyzeText(text, requiredKeywords)
	analysis.Filename = filename
	return analysis, nil
}

// MatchJob scores a resume against a job description. Skills for both
// sides are extracted with the catalog matcher; requiredYears may be nil,
// in which case the requirement is inferred from the job text.
func (a *Analyzer) MatchJob(resumeText, jobText string, requiredYears *int) types.JobMatchResult {
	if requiredYears == nil {
		if years := parsing.ExperienceYears(jobText); years > 0 {
			requiredYears = &years
		}
	}
	return matching.CalculateJobMatchScore(
		resumeText, jobText,
		skillNames(a.matcher.Extract(resumeText)),
		skillNames(a.matcher.Extract(jobText)),
		requiredYears,
	)
}

// CompareCandidates extracts each candidate's skills and ranks all of them
// against the same job posting, best match first.
func (a *Analyzer) CompareCandidates(ctx context.Context, resumes map[string]string, jobText string, requiredYears *int) ([]types.RankedCandidate, error) {
	if requiredYears == nil {
		if years := parsing.ExperienceYears(jobText); years > 0 {
			requiredYears = &years
		}
	}

	candidates := make([]types.Candidate, 0, len(resumes))
	for _, filename := range sortedKeys(resumes) {
		text := resumes[filename]
		candidates = append(candidates, types.Candidate{
			Filename:   filename,
			ResumeText: text,
			Skills:     skillNames(a.matcher.Extract(text)),
		})
	}

	return matching.RankCandidates(ctx, candidates, jobText, skillNames(a.matcher.Extract(jobText)), requiredYears)
}

// BatchItem is one document's outcome in a batch analysis. A failed
// extraction fills Error and leaves Analysis nil; other documents are
// unaffected.
type BatchItem struct {
	Filename string    `json:"filename"`
	Analysis *Analysis `json:"analysis,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// Document is raw uploaded file content paired with its name.
type Document struct {
	Filename string
	Data     []byte
}

// BatchAnalyze analyzes several documents concurrently. Results keep the
// input order and individual failures are reported per item rather than
// failing the batch.
func (a *Analyzer) BatchAnalyze(ctx context.Context, docs []Document, requiredKeywords []string) []BatchItem {
	items := make([]BatchItem, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			items[i].Filename = doc.Filename
			if err := ctx.Err(); err != nil {
				items[i].Error = err.Error()
				return nil
			}
			analysis, err := a.AnalyzeDocument(doc.Data, doc.Filename, requiredKeywords)
			if err != nil {
				items[i].Error = err.Error()
				return nil
			}
			items[i].Analysis = &analysis
			return nil
		})
	}
	_ = g.Wait()

	return items
}

func skillNames(extracted []types.ExtractedSkill) []string {
	names := make([]string, len(extracted))
	for i, skill := range extracted {
		names[i] = skill.Name
	}
	return names
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
