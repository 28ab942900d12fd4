package handler

import (
	"strings"

	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PositionHandler struct {
	uc usecase.PositionUsecase
}

func NewPositionHandler(uc usecase.PositionUsecase) *PositionHandler {
	return &PositionHandler{uc: uc}
}

func (h *PositionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("", h.ListPositions)
	r.Get("/:position_id", h.GetPosition)
}

func (h *PositionHandler) ListPositions(c fiber.Ctx) error {
	includeCurrent := strings.EqualFold(c.Query("include_current"), "true")

	positions, err := h.uc.ListPositions(c.Context(), includeCurrent)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, positions)
}

func (h *PositionHandler) GetPosition(c fiber.Ctx) error {
	p, err := h.uc.GetPosition(c.Context(), c.Params("position_id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, p)
}
