package matching

import "cv-match/internal/domain/job"

// Outcome is the result of scoring one job posting against a CV skill list.
// One Outcome exists per (CV, job) pair; never reused across requests.
type Outcome struct {
	Job           job.Posting `json:"job"`
	Score         int         `json:"score"`
	MatchedSkills []string    `json:"matched_skills"`
	MissingSkills []string    `json:"missing_skills"`
	Explanation   string      `json:"explanation"`
}

// Strategy scores a single job posting against extracted CV skills. Exactly
// one strategy is active per process, selected at composition time.
// Implementations are pure functions: identical inputs yield identical
// outcomes, and Score is always within [0, 100].
type Strategy interface {
	CalculateMatch(cvSkills []string, posting job.Posting) Outcome
	Name() string
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
