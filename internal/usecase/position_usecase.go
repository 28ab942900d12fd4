package usecase

import (
	"context"
	"errors"
	"strings"

	"career-compass/internal/domain/position"
	"career-compass/internal/repository"
)

type PositionUsecase interface {
	// ListPositions returns open positions, or every catalog entry
	// when includeCurrent is set.
	ListPositions(ctx context.Context, includeCurrent bool) ([]position.Position, error)
	GetPosition(ctx context.Context, id string) (position.Position, error)
}

type Position struct {
	repo repository.PositionRepository
}

func NewPositionUsecase(repo repository.PositionRepository) *Position {
	return &Position{repo: repo}
}

func (u *Position) ListPositions(ctx context.Context, includeCurrent bool) ([]position.Position, error) {
	open, err := u.repo.ListOpen(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	if !includeCurrent {
		return open, nil
	}

	current, err := u.repo.ListCurrent(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return append(open, current...), nil
}

func (u *Position) GetPosition(ctx context.Context, id string) (position.Position, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return position.Position{}, ErrInvalidInput
	}

	p, err := u.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPositionNotFound) {
			return position.Position{}, ErrPositionNotFound
		}
		return position.Position{}, ErrInternal
	}
	return p, nil
}
