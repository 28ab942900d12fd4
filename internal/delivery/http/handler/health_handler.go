package handler

import (
	"career-compass/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.GetHealth)
}

func (h *HealthHandler) GetHealth(c fiber.Ctx) error {
	return response.OK(c, fiber.Map{"healthy": true})
}
