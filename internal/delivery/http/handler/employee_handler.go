package handler

import (
	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/employee"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type EmployeeHandler struct {
	uc usecase.EmployeeUsecase
}

func NewEmployeeHandler(uc usecase.EmployeeUsecase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

func (h *EmployeeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("", h.ListEmployees)
	r.Post("", h.CreateEmployee)
	r.Get("/most-recent", h.GetMostRecent)
	r.Get("/:employee_id", h.GetEmployee)
	r.Put("/:employee_id", h.UpsertEmployee)
	r.Delete("/:employee_id", h.DeleteEmployee)
}

func (h *EmployeeHandler) ListEmployees(c fiber.Ctx) error {
	employees, err := h.uc.ListEmployees(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, employees)
}

func (h *EmployeeHandler) GetEmployee(c fiber.Ctx) error {
	e, err := h.uc.GetEmployee(c.Context(), c.Params("employee_id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, e)
}

func (h *EmployeeHandler) GetMostRecent(c fiber.Ctx) error {
	e, err := h.uc.MostRecentEmployee(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, e)
}

func (h *EmployeeHandler) CreateEmployee(c fiber.Ctx) error {
	return h.save(c, "")
}

func (h *EmployeeHandler) UpsertEmployee(c fiber.Ctx) error {
	return h.save(c, c.Params("employee_id"))
}

func (h *EmployeeHandler) save(c fiber.Ctx, id string) error {
	var req dto.EmployeeUpsertRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	saved, err := h.uc.SaveEmployee(c.Context(), employee.Employee{
		ID:              id,
		Name:            req.Name,
		Email:           req.Email,
		CurrentPosition: req.CurrentPosition,
		Department:      req.Department,
		Skills:          req.Skills,
		CareerGoals:     req.CareerGoals,
		TargetRoles:     req.TargetRoles,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, saved)
}

func (h *EmployeeHandler) DeleteEmployee(c fiber.Ctx) error {
	if err := h.uc.DeleteEmployee(c.Context(), c.Params("employee_id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, nil)
}
