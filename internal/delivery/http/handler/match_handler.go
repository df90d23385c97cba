package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"cv-match/internal/delivery/http/dto"
	"cv-match/internal/delivery/http/middleware"
	"cv-match/internal/pkg/response"
	"cv-match/internal/usecase"
)

const (
	defaultMinScore   = 0
	defaultMaxResults = 10
)

type MatchHandler struct {
	uc usecase.MatchUsecase
}

type matchRequest struct {
	CvText      string   `json:"cv_text"`
	JobIDs      []string `json:"job_ids"`
	SearchQuery string   `json:"search_query"`
	Location    string   `json:"location"`
	Radius      int      `json:"radius"`
	MinScore    *int     `json:"min_score"`
	MaxResults  *int     `json:"max_results"`
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/match", h.Match)
}

func (h *MatchHandler) Match(c fiber.Ctx) error {
	var req matchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	minScore := defaultMinScore
	if req.MinScore != nil {
		minScore = *req.MinScore
	}
	maxResults := defaultMaxResults
	if req.MaxResults != nil {
		maxResults = *req.MaxResults
	}

	if strings.TrimSpace(req.CvText) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "cv_text is required", nil, nil)
	}
	if minScore < 0 || minScore > 100 {
		return middleware.NewAppError(fiber.StatusBadRequest, "min_score must be within [0, 100]", nil, nil)
	}
	if maxResults < 1 || maxResults > 100 {
		return middleware.NewAppError(fiber.StatusBadRequest, "max_results must be within [1, 100]", nil, nil)
	}

	res, err := h.uc.Match(c.Context(), usecase.MatchParams{
		CvText:      req.CvText,
		JobIDs:      req.JobIDs,
		SearchQuery: req.SearchQuery,
		Location:    req.Location,
		Radius:      req.Radius,
		MinScore:    minScore,
		MaxResults:  maxResults,
	})
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	out := dto.MatchResponse{
		Matches:            make([]dto.MatchItemResponse, 0, len(res.Matches)),
		TotalJobsEvaluated: res.TotalJobsEvaluated,
		ExtractedSkills:    res.ExtractedSkills,
		Strategy:           res.Strategy,
	}
	for _, m := range res.Matches {
		out.Matches = append(out.Matches, dto.MatchItemResponse{
			JobID:         m.Job.ID,
			Headline:      m.Job.Headline,
			Employer:      m.Job.Employer,
			Location:      m.Job.Location,
			PublishedAt:   m.Job.PublishedAt,
			Deadline:      m.Job.Deadline,
			MatchScore:    m.Score,
			MatchedSkills: m.MatchedSkills,
			MissingSkills: m.MissingSkills,
			Explanation:   m.Explanation,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapMatchUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrSearchUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Job search temporarily unavailable", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
