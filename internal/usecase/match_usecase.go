package usecase

import (
	"context"
	"errors"
	"strings"

	"career-compass/internal/domain/matching"
	"career-compass/internal/domain/position"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/repository"
)

type MatchUsecase interface {
	// FindMatches ranks open positions for the employee. Zero values
	// for threshold and topN fall back to the configured defaults.
	FindMatches(ctx context.Context, employeeID string, threshold float64, topN int) ([]matching.PositionMatch, error)
	// ScorePosition computes the fitness of one employee against one
	// position regardless of threshold.
	ScorePosition(ctx context.Context, employeeID, positionID string) (matching.PositionMatch, error)
}

type Match struct {
	employees repository.EmployeeRepository
	positions repository.PositionRepository
	cache     Cache

	defaultThreshold float64
	defaultTopN      int
}

func NewMatchUsecase(employees repository.EmployeeRepository, positions repository.PositionRepository, c Cache, defaultThreshold float64, defaultTopN int) *Match {
	if c == nil {
		c = NopCache{}
	}
	return &Match{
		employees:        employees,
		positions:        positions,
		cache:            c,
		defaultThreshold: defaultThreshold,
		defaultTopN:      defaultTopN,
	}
}

func (u *Match) FindMatches(ctx context.Context, employeeID string, threshold float64, topN int) ([]matching.PositionMatch, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return nil, ErrInvalidInput
	}
	useDefaults := threshold <= 0 && topN <= 0
	if threshold <= 0 {
		threshold = u.defaultThreshold
	}
	if topN <= 0 {
		topN = u.defaultTopN
	}

	// only the default query is cached; ad-hoc thresholds stay uncached
	if useDefaults {
		var cached []matching.PositionMatch
		if ok, _ := u.cache.GetJSON(ctx, cache.MatchesKey(employeeID), &cached); ok {
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

	matches := matching.FindMatches(emp, open, threshold, topN)
	if useDefaults {
		_ = u.cache.SetJSON(ctx, cache.MatchesKey(employeeID), matches, 0)
	}
	return matches, nil
}

func (u *Match) ScorePosition(ctx context.Context, employeeID, positionID string) (matching.PositionMatch, error) {
	employeeID = strings.TrimSpace(employeeID)
	positionID = strings.TrimSpace(positionID)
	if employeeID == "" || positionID == "" {
		return matching.PositionMatch{}, ErrInvalidInput
	}

	emp, err := u.employees.Get(ctx, employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return matching.PositionMatch{}, ErrEmployeeNotFound
		}
		return matching.PositionMatch{}, ErrInternal
	}

	pos, err := u.positions.Get(ctx, positionID)
	if err != nil {
		if errors.Is(err, repository.ErrPositionNotFound) {
			return matching.PositionMatch{}, ErrPositionNotFound
		}
		return matching.PositionMatch{}, ErrInternal
	}

	// threshold 0 keeps the position in even on a zero score
	single := matching.FindMatches(emp, []position.Position{pos}, 0, 1)
	if len(single) == 0 {
		return matching.PositionMatch{}, ErrInternal
	}
	return single[0], nil
}
