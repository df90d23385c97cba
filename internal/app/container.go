package app

import (
	"fmt"

	"go.uber.org/zap"

	"cv-match/internal/config"
	"cv-match/internal/domain/cv"
	"cv-match/internal/domain/matching"
	"cv-match/internal/infrastructure/cache"
	"cv-match/internal/infrastructure/jobsearch"
	"cv-match/internal/logger"
	"cv-match/internal/usecase"
)

// Container holds every wired dependency. The matching strategy is resolved
// here once; swapping strategies means changing MATCH_STRATEGY, nothing else.
type Container struct {
	Config   config.Config
	Logger   *zap.Logger
	Strategy matching.Strategy
	Cache    *cache.Redis

	MatchUC    usecase.MatchUsecase
	AnalysisUC usecase.AnalysisUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	log, err := logger.New(cfg.App.Environment)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	strategy, err := newStrategy(cfg.Matching.Strategy)
	if err != nil {
		return nil, err
	}

	analyzer := cv.NewAnalyzer(cv.DefaultExtractors())
	jobs := jobsearch.NewClient(cfg.JobSearch.BaseURL, cfg.JobSearch.Timeout, log)
	redisCache := cache.NewRedis(cfg.Redis, log)

	return &Container{
		Config:     cfg,
		Logger:     log,
		Strategy:   strategy,
		Cache:      redisCache,
		MatchUC:    usecase.NewMatchUsecase(analyzer, jobs, strategy, redisCache, log),
		AnalysisUC: usecase.NewAnalysisUsecase(analyzer),
	}, nil
}

func newStrategy(name string) (matching.Strategy, error) {
	switch name {
	case "", "skill_frequency":
		return matching.NewSkillFrequencyStrategy(), nil
	case "keyword_overlap":
		return matching.NewKeywordOverlapStrategy(), nil
	default:
		return nil, fmt.Errorf("unknown match strategy %q", name)
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
	if c.Cache == nil {
		return nil
	}
	return c.Cache.Close()
}
