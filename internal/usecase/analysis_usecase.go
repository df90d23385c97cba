package usecase

import (
	"errors"
	"fmt"

	"cv-match/internal/domain/cv"
)

// AnalysisUsecase exposes standalone CV analysis to the delivery layer.
type AnalysisUsecase interface {
	Analyze(cvText, targetRole string) (cv.AnalysisResult, error)
}

type Analysis struct {
	analyzer *cv.Analyzer
}

func NewAnalysisUsecase(analyzer *cv.Analyzer) *Analysis {
	return &Analysis{analyzer: analyzer}
}

func (u *Analysis) Analyze(cvText, targetRole string) (cv.AnalysisResult, error) {
	res, err := u.analyzer.Analyze(cvText, targetRole)
	if err != nil {
		if errors.Is(err, cv.ErrEmptyText) {
			return cv.AnalysisResult{}, fmt.Errorf("%w: cv text is required", ErrInvalidInput)
		}
		return cv.AnalysisResult{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return res, nil
}
