package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

type jobSearchCacheKeyInput struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// JobsSearchCacheKey derives a stable cache key from normalized search
// parameters.
func JobsSearchCacheKey(query string, limit int) string {
	in := jobSearchCacheKeyInput{
		Query: normalizeSearchValue(query),
		Limit: limit,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "jobs:search:" + hex.EncodeToString(sum[:])
}
