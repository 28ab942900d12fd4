package usecase

import (
	"context"
	"testing"

	"career-compass/internal/domain/matching"
	"career-compass/internal/domain/position"
	"career-compass/internal/infrastructure/cache"
)

func TestTrendingSkills_ComputesAndCaches(t *testing.T) {
	positions := &fakePositionRepo{
		open: []position.Position{
			{ID: "p1", RequiredSkills: map[string]int{"python": 4, "sql": 3}},
			{ID: "p2", RequiredSkills: map[string]int{"python": 3}},
			{ID: "p3", RequiredSkills: map[string]int{"python": 4}},
		},
	}
	c := newFakeCache()
	u := NewTrendingUsecase(positions, c)

	trending, err := u.TrendingSkills(context.Background())
	if err != nil {
		t.Fatalf("trending: %v", err)
	}
	if len(trending) != 2 || trending[0].Skill != "python" {
		t.Fatalf("expected python first, got %+v", trending)
	}
	if trending[0].DemandCount != 3 || trending[0].Trend != matching.TrendHigh {
		t.Fatalf("unexpected python row: %+v", trending[0])
	}
	if len(c.sets) != 1 || c.sets[0] != cache.TrendingSkillsKey {
		t.Fatalf("result must be cached, got %v", c.sets)
	}
}

func TestTrendingSkills_CacheHit(t *testing.T) {
	positions := &fakePositionRepo{}
	c := newFakeCache()
	c.hits[cache.TrendingSkillsKey] = []matching.TrendingSkill{{Skill: "cached"}}

	u := NewTrendingUsecase(positions, c)
	trending, err := u.TrendingSkills(context.Background())
	if err != nil {
		t.Fatalf("trending: %v", err)
	}
	if len(trending) != 1 || trending[0].Skill != "cached" {
		t.Fatalf("expected cached snapshot, got %+v", trending)
	}
}
