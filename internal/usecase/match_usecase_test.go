package usecase

import (
	"context"
	"errors"
	"testing"

	"career-compass/internal/domain/employee"
	"career-compass/internal/domain/matching"
	"career-compass/internal/domain/position"
	"career-compass/internal/infrastructure/cache"
)

func matchFixtures() (*fakeEmployeeRepo, *fakePositionRepo) {
	emp := employee.Employee{
		ID:     "emp_001",
		Name:   "Dana",
		Skills: map[string]int{"python": 4, "sql": 3},
	}
	positions := &fakePositionRepo{
		open: []position.Position{
			{ID: "pos_fit", Title: "Data Analyst", RequiredSkills: map[string]int{"python": 3, "sql": 3}},
			{ID: "pos_far", Title: "Architect", RequiredSkills: map[string]int{"kubernetes": 5, "go": 5}},
		},
	}
	return newFakeEmployeeRepo(emp), positions
}

func TestFindMatches_DefaultsAndCaching(t *testing.T) {
	employees, positions := matchFixtures()
	c := newFakeCache()
	u := NewMatchUsecase(employees, positions, c, 0.7, 5)

	matches, err := u.FindMatches(context.Background(), "emp_001", 0, 0)
	if err != nil {
		t.Fatalf("find matches: %v", err)
	}
	if len(matches) != 1 || matches[0].Position.ID != "pos_fit" {
		t.Fatalf("expected the fitting position only, got %+v", matches)
	}
	if len(c.sets) != 1 || c.sets[0] != cache.MatchesKey("emp_001") {
		t.Fatalf("default query must be cached, got %v", c.sets)
	}
}

func TestFindMatches_CacheHitSkipsRepo(t *testing.T) {
	employees, positions := matchFixtures()
	c := newFakeCache()
	cached := []matching.PositionMatch{{MatchScore: 0.99}}
	c.hits[cache.MatchesKey("emp_001")] = cached

	u := NewMatchUsecase(employees, positions, c, 0.7, 5)
	matches, err := u.FindMatches(context.Background(), "emp_001", 0, 0)
	if err != nil {
		t.Fatalf("find matches: %v", err)
	}
	if len(matches) != 1 || matches[0].MatchScore != 0.99 {
		t.Fatalf("expected cached result, got %+v", matches)
	}
}

func TestFindMatches_AdHocThresholdUncached(t *testing.T) {
	employees, positions := matchFixtures()
	c := newFakeCache()
	u := NewMatchUsecase(employees, positions, c, 0.7, 5)

	if _, err := u.FindMatches(context.Background(), "emp_001", 0.1, 10); err != nil {
		t.Fatalf("find matches: %v", err)
	}
	if len(c.sets) != 0 {
		t.Fatalf("ad-hoc query must not be cached, got %v", c.sets)
	}
}

func TestFindMatches_UnknownEmployee(t *testing.T) {
	employees, positions := matchFixtures()
	u := NewMatchUsecase(employees, positions, nil, 0.7, 5)

	if _, err := u.FindMatches(context.Background(), "ghost", 0, 0); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestScorePosition_IgnoresThreshold(t *testing.T) {
	employees, positions := matchFixtures()
	u := NewMatchUsecase(employees, positions, nil, 0.7, 5)

	m, err := u.ScorePosition(context.Background(), "emp_001", "pos_far")
	if err != nil {
		t.Fatalf("score position: %v", err)
	}
	if m.Position.ID != "pos_far" {
		t.Fatalf("unexpected position: %+v", m.Position)
	}
	if m.MatchScore != 0 {
		t.Fatalf("no overlapping skills must score 0, got %f", m.MatchScore)
	}
	if m.Recommendation == "" {
		t.Fatalf("recommendation must always be present")
	}
}

func TestScorePosition_UnknownPosition(t *testing.T) {
	employees, positions := matchFixtures()
	u := NewMatchUsecase(employees, positions, nil, 0.7, 5)

	if _, err := u.ScorePosition(context.Background(), "emp_001", "ghost"); !errors.Is(err, ErrPositionNotFound) {
		t.Fatalf("expected ErrPositionNotFound, got %v", err)
	}
}
