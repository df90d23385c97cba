package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"cv-match/internal/domain/cv"
	"cv-match/internal/domain/job"
	"cv-match/internal/domain/matching"
)

const (
	// fallbackSearchQuery is used when the request carries no search query.
	fallbackSearchQuery = "software developer"

	// overFetchFactor gives post-filtering headroom; the fetch limit is capped
	// at maxFetchLimit regardless.
	overFetchFactor = 3
	maxFetchLimit   = 100

	searchCacheTTL = 10 * time.Minute
)

// MatchParams carries one CV-to-jobs match request. CvText is required;
// JobIDs, SearchQuery, Location and Radius are optional.
type MatchParams struct {
	CvText      string
	JobIDs      []string
	SearchQuery string
	Location    string
	Radius      int
	MinScore    int
	MaxResults  int
}

// MatchResult is the assembled response: Matches is sorted non-increasing by
// score with stable ties in retrieval order, truncated to MaxResults, and is
// always a subsequence of the retrieved jobs. It is never padded.
type MatchResult struct {
	Matches            []matching.Outcome
	TotalJobsEvaluated int
	ExtractedSkills    []string
	Strategy           string
}

// MatchUsecase orchestrates CV analysis, job retrieval and per-job scoring.
type MatchUsecase interface {
	Match(ctx context.Context, params MatchParams) (MatchResult, error)
}

type Match struct {
	analyzer *cv.Analyzer
	jobs     JobSearcher
	strategy matching.Strategy
	cache    SearchCache
	logger   *zap.Logger
}

// NewMatchUsecase wires the coordinator. cache may be nil to disable search
// caching; the active strategy is fixed for the life of the process.
func NewMatchUsecase(analyzer *cv.Analyzer, jobs JobSearcher, strategy matching.Strategy, cache SearchCache, logger *zap.Logger) *Match {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Match{analyzer: analyzer, jobs: jobs, strategy: strategy, cache: cache, logger: logger}
}

func (u *Match) Match(ctx context.Context, params MatchParams) (MatchResult, error) {
	if strings.TrimSpace(params.CvText) == "" {
		return MatchResult{}, fmt.Errorf("%w: cv text is required", ErrInvalidInput)
	}
	if params.MinScore < 0 || params.MinScore > 100 {
		return MatchResult{}, fmt.Errorf("%w: min score must be within [0, 100]", ErrInvalidInput)
	}
	if params.MaxResults < 1 || params.MaxResults > 100 {
		return MatchResult{}, fmt.Errorf("%w: max results must be within [1, 100]", ErrInvalidInput)
	}

	analysis, err := u.analyzer.Analyze(params.CvText, params.SearchQuery)
	if err != nil {
		if errors.Is(err, cv.ErrEmptyText) {
			return MatchResult{}, fmt.Errorf("%w: cv text is required", ErrInvalidInput)
		}
		return MatchResult{}, fmt.Errorf("%w: cv analysis: %v", ErrInternal, err)
	}
	skills := flattenSkills(analysis)

	query := strings.TrimSpace(params.SearchQuery)
	if query == "" {
		query = fallbackSearchQuery
	}
	limit := params.MaxResults * overFetchFactor
	if limit > maxFetchLimit {
		limit = maxFetchLimit
	}

	candidates, err := u.fetchJobs(ctx, query, limit)
	if err != nil {
		return MatchResult{}, fmt.Errorf("%w: %v", ErrSearchUnavailable, err)
	}
	if len(params.JobIDs) > 0 {
		candidates = filterByID(candidates, params.JobIDs)
	}

	result := MatchResult{
		Matches:         []matching.Outcome{},
		ExtractedSkills: skills,
		Strategy:        u.strategy.Name(),
	}
	if len(candidates) == 0 {
		// Legitimate empty outcome, not an error.
		return result, nil
	}

	outcomes, err := u.scoreAll(skills, candidates)
	if err != nil {
		return MatchResult{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	kept := make([]matching.Outcome, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Score >= params.MinScore {
			kept = append(kept, o)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Score > kept[j].Score })
	if len(kept) > params.MaxResults {
		kept = kept[:params.MaxResults]
	}

	result.Matches = kept
	result.TotalJobsEvaluated = len(candidates)
	return result, nil
}

// scoreAll fans out one scoring goroutine per candidate and joins on all of
// them. A failing job aborts the whole request after its siblings finish; no
// partial result is delivered.
func (u *Match) scoreAll(skills []string, candidates []job.Posting) ([]matching.Outcome, error) {
	outcomes := make([]matching.Outcome, len(candidates))
	failures := make([]error, len(candidates))

	var wg sync.WaitGroup
	wg.Add(len(candidates))
	for i, posting := range candidates {
		go func(i int, posting job.Posting) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					failures[i] = fmt.Errorf("scoring job %s: %v", posting.ID, r)
				}
			}()
			outcomes[i] = u.strategy.CalculateMatch(skills, posting)
		}(i, posting)
	}
	wg.Wait()

	for _, err := range failures {
		if err != nil {
			return nil, err
		}
	}
	return outcomes, nil
}

func (u *Match) fetchJobs(ctx context.Context, query string, limit int) ([]job.Posting, error) {
	key := JobsSearchCacheKey(query, limit)

	if u.cache != nil {
		var cached []job.Posting
		ok, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && ok {
			return cached, nil
		}
		if err != nil {
			u.logger.Warn("search cache read failed", zap.Error(err))
		}
	}

	postings, err := u.jobs.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, postings, searchCacheTTL); err != nil {
			u.logger.Warn("search cache write failed", zap.Error(err))
		}
	}
	return postings, nil
}

// flattenSkills joins all categories into one ordered list. Duplicates across
// categories are preserved on purpose; the strategies tolerate them.
func flattenSkills(analysis cv.AnalysisResult) []string {
	skills := make([]string, 0, analysis.TotalSkills())
	skills = append(skills, analysis.TechnicalSkills...)
	skills = append(skills, analysis.ProgrammingLanguages...)
	skills = append(skills, analysis.Frameworks...)
	skills = append(skills, analysis.SoftSkills...)
	return skills
}

// filterByID intersects the fetched postings with an explicit allowlist.
// Allowlisted IDs absent from the fetched set are silently dropped.
func filterByID(postings []job.Posting, ids []string) []job.Posting {
	allowed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		allowed[id] = struct{}{}
	}

	kept := make([]job.Posting, 0, len(postings))
	for _, p := range postings {
		if _, ok := allowed[p.ID]; ok {
			kept = append(kept, p)
		}
	}
	return kept
}
