package dto

import "time"

type MatchItemResponse struct {
	JobID         string    `json:"job_id"`
	Headline      string    `json:"headline"`
	Employer      string    `json:"employer"`
	Location      string    `json:"location"`
	PublishedAt   time.Time `json:"published_at"`
	Deadline      string    `json:"deadline"`
	MatchScore    int       `json:"match_score"`
	MatchedSkills []string  `json:"matched_skills"`
	MissingSkills []string  `json:"missing_skills"`
	Explanation   string    `json:"explanation"`
}

type MatchResponse struct {
	Matches            []MatchItemResponse `json:"matches"`
	TotalJobsEvaluated int                 `json:"total_jobs_evaluated"`
	ExtractedSkills    []string            `json:"extracted_skills"`
	Strategy           string              `json:"strategy"`
}
