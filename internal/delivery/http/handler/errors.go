package handler

import (
	"errors"

	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// mapUsecaseError translates the usecase sentinels every handler
// shares into transportable AppErrors.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Employee not found", nil, err)
	case errors.Is(err, usecase.ErrPositionNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Position not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
}
