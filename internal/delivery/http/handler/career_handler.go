package handler

import (
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CareerHandler struct {
	uc usecase.CareerUsecase
}

func NewCareerHandler(uc usecase.CareerUsecase) *CareerHandler {
	return &CareerHandler{uc: uc}
}

func (h *CareerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:employee_id/career-path/:position_id", h.GetCareerPath)
	r.Get("/:employee_id/career-suggestions", h.GetCareerSuggestions)
}

func (h *CareerHandler) GetCareerPath(c fiber.Ctx) error {
	path, err := h.uc.AnalyzeCareerPath(c.Context(), c.Params("employee_id"), c.Params("position_id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, path)
}

func (h *CareerHandler) GetCareerSuggestions(c fiber.Ctx) error {
	top, err := parseQueryInt(c, "top", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	suggestions, err := h.uc.CareerSuggestions(c.Context(), c.Params("employee_id"), top)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, suggestions)
}
