package jobsearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"cv-match/internal/domain/job"
)

// ErrUnavailable signals that the ads service could not deliver results:
// transport failure, non-2xx status, or an undecodable payload. Callers must
// not conflate it with a successful empty result.
var ErrUnavailable = errors.New("job search service unavailable")

const defaultTimeout = 5 * time.Second

// Client talks to a JobTech-style ads search API: GET {base}/search?q=&limit=
// answering a {"hits": [...]} envelope.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type searchResponse struct {
	Hits []adHit `json:"hits"`
}

type adHit struct {
	ID          string `json:"id"`
	Headline    string `json:"headline"`
	Description struct {
		Text string `json:"text"`
	} `json:"description"`
	Employer struct {
		Name string `json:"name"`
	} `json:"employer"`
	WorkplaceAddress struct {
		Municipality string `json:"municipality"`
	} `json:"workplace_address"`
	PublicationDate     string `json:"publication_date"`
	ApplicationDeadline string `json:"application_deadline"`
}

func (c *Client) Search(ctx context.Context, query string, limit int) ([]job.Posting, error) {
	if c == nil || c.client == nil {
		return nil, fmt.Errorf("%w: client not configured", ErrUnavailable)
	}

	params := url.Values{}
	if q := strings.TrimSpace(query); q != "" {
		params.Set("q", q)
	}
	params.Set("limit", strconv.Itoa(limit))
	endpoint := c.baseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("job search request failed", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warn("job search returned non-2xx",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("body", strings.TrimSpace(string(body))),
		)
		return nil, fmt.Errorf("%w: status=%d", ErrUnavailable, resp.StatusCode)
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: malformed payload: %v", ErrUnavailable, err)
	}

	postings := make([]job.Posting, 0, len(out.Hits))
	for _, hit := range out.Hits {
		postings = append(postings, normalizeHit(hit))
	}
	return postings, nil
}

func normalizeHit(hit adHit) job.Posting {
	deadline := strings.TrimSpace(hit.ApplicationDeadline)
	if deadline == "" {
		deadline = job.DeadlineNotSpecified
	}
	return job.Posting{
		ID:          hit.ID,
		Headline:    hit.Headline,
		Description: hit.Description.Text,
		Employer:    hit.Employer.Name,
		Location:    hit.WorkplaceAddress.Municipality,
		PublishedAt: parsePublicationDate(hit.PublicationDate),
		Deadline:    deadline,
	}
}

func parsePublicationDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
