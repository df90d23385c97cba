package usecase

import (
	"context"
	"time"

	"cv-match/internal/domain/job"
)

// JobSearcher is the outbound port to the external job ads service. It returns
// best-effort matches for query capped at limit. Transport failures and
// malformed payloads surface as errors; zero hits is a valid empty result.
type JobSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]job.Posting, error)
}

// SearchCache caches job search results. Implementations degrade gracefully:
// a broken cache reports misses and write errors, it never blocks a request.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}
