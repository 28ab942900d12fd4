package handler

import (
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	plans    usecase.LearningPlanUsecase
	trending usecase.TrendingUsecase
}

func NewSkillHandler(plans usecase.LearningPlanUsecase, trending usecase.TrendingUsecase) *SkillHandler {
	return &SkillHandler{plans: plans, trending: trending}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/trending", h.GetTrending)
	r.Get("/:skill/recommendations", h.GetRecommendations)
}

func (h *SkillHandler) GetTrending(c fiber.Ctx) error {
	trending, err := h.trending.TrendingSkills(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, trending)
}

func (h *SkillHandler) GetRecommendations(c fiber.Ctx) error {
	currentLevel, err := parseQueryInt(c, "current_level", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	targetLevel, err := parseQueryInt(c, "target_level", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	resources, err := h.plans.SkillRecommendations(c.Context(), c.Params("skill"), currentLevel, targetLevel)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, resources)
}
