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

type CvAnalysisHandler struct {
	uc usecase.AnalysisUsecase
}

type cvAnalysisRequest struct {
	CvText     string `json:"cv_text"`
	TargetRole string `json:"target_role"`
}

func NewCvAnalysisHandler(uc usecase.AnalysisUsecase) *CvAnalysisHandler {
	return &CvAnalysisHandler{uc: uc}
}

func (h *CvAnalysisHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/cv/analyze", h.Analyze)
}

func (h *CvAnalysisHandler) Analyze(c fiber.Ctx) error {
	var req cvAnalysisRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if strings.TrimSpace(req.CvText) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "cv_text is required", nil, nil)
	}

	res, err := h.uc.Analyze(req.CvText, req.TargetRole)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := dto.CvAnalysisResponse{
		TechnicalSkills:      res.TechnicalSkills,
		SoftSkills:           res.SoftSkills,
		ProgrammingLanguages: res.ProgrammingLanguages,
		Frameworks:           res.Frameworks,
		YearsOfExperience:    res.YearsOfExperience,
		Summary:              res.Summary,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
