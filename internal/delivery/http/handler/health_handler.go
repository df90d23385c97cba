package handler

import (
	"github.com/gofiber/fiber/v3"

	"cv-match/internal/pkg/response"
)

type HealthHandler struct {
	appName  string
	strategy string
}

func NewHealthHandler(appName, strategy string) *HealthHandler {
	return &HealthHandler{appName: appName, strategy: strategy}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"app":      h.appName,
		"strategy": h.strategy,
	})
}
