package matching

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// RankCandidates scores every candidate against the same job posting and
// returns them ordered best first. Scoring is independent per candidate and
// runs concurrently; the sort is stable so equal scores keep their input
// order.
func RankCandidates(
	ctx context.Context,
	candidates []types.Candidate,
	jobText string,
	jobSkills []string,
	requiredYears *int,
) ([]types.RankedCandidate, error) {
	ranked := make([]types.RankedCandidate, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			match := CalculateJobMatchScore(candidate.ResumeText, jobText, candidate.Skills, jobSkills, requiredYears)
			ranked[i] = types.RankedCandidate{
				Candidate:  candidate,
				MatchScore: match.OverallScore,
				MatchLevel: match.MatchLevel,
				Match:      &match,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})
	return ranked, nil
}
