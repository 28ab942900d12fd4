package usecase

import (
	"context"
	"errors"
	"strings"

	"career-compass/internal/domain/matching"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/repository"
)

type CareerUsecase interface {
	// AnalyzeCareerPath reports what it takes for the employee to
	// reach a specific target position.
	AnalyzeCareerPath(ctx context.Context, employeeID, positionID string) (matching.CareerPath, error)
	// CareerSuggestions ranks the full catalog, open and current
	// positions alike, for the employee.
	CareerSuggestions(ctx context.Context, employeeID string, topN int) ([]matching.CareerSuggestion, error)
}

type Career struct {
	employees repository.EmployeeRepository
	positions repository.PositionRepository
	cache     Cache

	defaultTopN int
}

func NewCareerUsecase(employees repository.EmployeeRepository, positions repository.PositionRepository, c Cache, defaultTopN int) *Career {
	if c == nil {
		c = NopCache{}
	}
	return &Career{employees: employees, positions: positions, cache: c, defaultTopN: defaultTopN}
}

func (u *Career) AnalyzeCareerPath(ctx context.Context, employeeID, positionID string) (matching.CareerPath, error) {
	employeeID = strings.TrimSpace(employeeID)
	positionID = strings.TrimSpace(positionID)
	if employeeID == "" || positionID == "" {
		return matching.CareerPath{}, ErrInvalidInput
	}

	emp, err := u.employees.Get(ctx, employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return matching.CareerPath{}, ErrEmployeeNotFound
		}
		return matching.CareerPath{}, ErrInternal
	}

	target, err := u.positions.Get(ctx, positionID)
	if err != nil {
		if errors.Is(err, repository.ErrPositionNotFound) {
			return matching.CareerPath{}, ErrPositionNotFound
		}
		return matching.CareerPath{}, ErrInternal
	}

	return matching.AnalyzeCareerPath(emp, target), nil
}

func (u *Career) CareerSuggestions(ctx context.Context, employeeID string, topN int) ([]matching.CareerSuggestion, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return nil, ErrInvalidInput
	}
	useDefaults := topN <= 0
	if topN <= 0 {
		topN = u.defaultTopN
	}

	if useDefaults {
		var cached []matching.CareerSuggestion
		if ok, _ := u.cache.GetJSON(ctx, cache.SuggestionsKey(employeeID), &cached); ok {
			return cached, nil
		}
	}

	emp, err := u.employees.Get(ctx, employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, ErrInternal
	}

	open, err := u.positions.ListOpen(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	current, err := u.positions.ListCurrent(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	suggestions := matching.CareerSuggestions(emp, append(open, current...), topN)
	if useDefaults {
		_ = u.cache.SetJSON(ctx, cache.SuggestionsKey(employeeID), suggestions, 0)
	}
	return suggestions, nil
}
