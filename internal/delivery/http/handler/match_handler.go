package handler

import (
	"strconv"
	"strings"

	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchUsecase
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:employee_id/matches", h.GetMatches)
	r.Get("/:employee_id/matches/:position_id", h.GetPositionScore)
}

func (h *MatchHandler) GetMatches(c fiber.Ctx) error {
	threshold, err := parseQueryFloat(c, "threshold", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	top, err := parseQueryInt(c, "top", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	matches, err := h.uc.FindMatches(c.Context(), c.Params("employee_id"), threshold, top)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, matches)
}

func (h *MatchHandler) GetPositionScore(c fiber.Ctx) error {
	m, err := h.uc.ScorePosition(c.Context(), c.Params("employee_id"), c.Params("position_id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, m)
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}

func parseQueryFloat(c fiber.Ctx, key string, defaultVal float64) (float64, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return defaultVal, nil
	}
	return strconv.ParseFloat(s, 64)
}
