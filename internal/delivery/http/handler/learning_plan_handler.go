package handler

import (
	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type LearningPlanHandler struct {
	uc usecase.LearningPlanUsecase
}

func NewLearningPlanHandler(uc usecase.LearningPlanUsecase) *LearningPlanHandler {
	return &LearningPlanHandler{uc: uc}
}

func (h *LearningPlanHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/:employee_id/learning-plans", h.CreatePlan)
}

func (h *LearningPlanHandler) CreatePlan(c fiber.Ctx) error {
	var req dto.LearningPlanRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	plan, err := h.uc.BuildPlan(c.Context(), c.Params("employee_id"), usecase.PlanRequest{
		TargetRole:   req.TargetRole,
		UseExternal:  req.UseExternal,
		MaxResources: req.MaxResources,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "created", plan)
}
