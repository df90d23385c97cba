package job

import "time"

// DeadlineNotSpecified is the sentinel used when the upstream ad carries no
// application deadline.
const DeadlineNotSpecified = "Not specified"

// Posting is a normalized job ad as returned by the external search service.
// It is a value object: built once per request and never mutated.
type Posting struct {
	ID          string    `json:"id"`
	Headline    string    `json:"headline"`
	Description string    `json:"description"`
	Employer    string    `json:"employer"`
	Location    string    `json:"location"`
	PublishedAt time.Time `json:"published_at"`
	Deadline    string    `json:"deadline"`
}
