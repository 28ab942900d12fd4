package usecase

import (
	"context"

	"career-compass/internal/domain/matching"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/repository"
)

type TrendingUsecase interface {
	TrendingSkills(ctx context.Context) ([]matching.TrendingSkill, error)
}

type Trending struct {
	positions repository.PositionRepository
	cache     Cache
}

func NewTrendingUsecase(positions repository.PositionRepository, c Cache) *Trending {
	if c == nil {
		c = NopCache{}
	}
	return &Trending{positions: positions, cache: c}
}

func (u *Trending) TrendingSkills(ctx context.Context) ([]matching.TrendingSkill, error) {
	var cached []matching.TrendingSkill
	if ok, _ := u.cache.GetJSON(ctx, cache.TrendingSkillsKey, &cached); ok {
		return cached, nil
	}

	open, err := u.positions.ListOpen(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	trending := matching.Trending(open)
	_ = u.cache.SetJSON(ctx, cache.TrendingSkillsKey, trending, 0)
	return trending, nil
}
