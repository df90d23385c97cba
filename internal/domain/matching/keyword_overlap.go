package matching

import (
	"fmt"
	"strings"
	"unicode"

	"cv-match/internal/domain/job"
)

const (
	overlapMinTokenLength = 3
	overlapMaxMatched     = 10
)

// KeywordOverlapStrategy is a looser alternate: it intersects the token sets
// of the job text and the CV skills instead of scanning for whole skill names.
// It computes no missing skills.
type KeywordOverlapStrategy struct{}

func NewKeywordOverlapStrategy() *KeywordOverlapStrategy {
	return &KeywordOverlapStrategy{}
}

func (s *KeywordOverlapStrategy) Name() string { return "keyword_overlap" }

func (s *KeywordOverlapStrategy) CalculateMatch(cvSkills []string, posting job.Posting) Outcome {
	jobTokens := tokenize(posting.Headline + " " + posting.Description)
	cvTokens := tokenize(strings.Join(cvSkills, " "))

	jobSet := make(map[string]struct{}, len(jobTokens))
	for _, t := range jobTokens {
		jobSet[t] = struct{}{}
	}

	intersection := make([]string, 0, len(cvTokens))
	for _, t := range cvTokens {
		if _, ok := jobSet[t]; ok {
			intersection = append(intersection, t)
		}
	}

	denom := len(jobTokens)
	if denom < 1 {
		denom = 1
	}
	score := clampScore(100 * len(intersection) / denom)

	matched := intersection
	if len(matched) > overlapMaxMatched {
		matched = matched[:overlapMaxMatched]
	}

	return Outcome{
		Job:           posting,
		Score:         score,
		MatchedSkills: matched,
		MissingSkills: []string{},
		Explanation:   fmt.Sprintf("%d overlapping keywords between the CV and the job posting.", len(intersection)),
	}
}

// tokenize lowercases, splits on anything that is not a letter or digit, and
// drops tokens shorter than three characters. Returns distinct tokens in
// first-occurrence order.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]struct{}, len(fields))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) < overlapMinTokenLength {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		tokens = append(tokens, f)
	}
	return tokens
}
