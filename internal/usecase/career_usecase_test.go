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

func careerFixtures() (*fakeEmployeeRepo, *fakePositionRepo) {
	emp := employee.Employee{
		ID:     "emp_001",
		Skills: map[string]int{"python": 3, "sql": 3, "excel": 4},
	}
	positions := &fakePositionRepo{
		open: []position.Position{
			{ID: "pos_target", Title: "Senior Analyst", Department: "Analytics",
				RequiredSkills: map[string]int{"python": 4, "sql": 4, "statistics": 3}},
			{ID: "pos_other", Title: "Platform Engineer", Department: "Infrastructure",
				RequiredSkills: map[string]int{"go": 5, "kubernetes": 5}},
		},
	}
	return newFakeEmployeeRepo(emp), positions
}

func TestAnalyzeCareerPath(t *testing.T) {
	employees, positions := careerFixtures()
	u := NewCareerUsecase(employees, positions, nil, 5)

	path, err := u.AnalyzeCareerPath(context.Background(), "emp_001", "pos_target")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if path.TargetPosition.ID != "pos_target" {
		t.Fatalf("unexpected target: %+v", path.TargetPosition)
	}
	// gaps: statistics 3, python 1, sql 1 -> round(5 * 1.5) = 8 months
	if path.EstimatedMonths != 8 {
		t.Fatalf("expected 8 months, got %d", path.EstimatedMonths)
	}
	if len(path.SkillGaps) != 3 || path.SkillGaps[0].SkillName != "statistics" {
		t.Fatalf("expected the statistics gap first, got %+v", path.SkillGaps)
	}
}

func TestAnalyzeCareerPath_UnknownPosition(t *testing.T) {
	employees, positions := careerFixtures()
	u := NewCareerUsecase(employees, positions, nil, 5)

	if _, err := u.AnalyzeCareerPath(context.Background(), "emp_001", "ghost"); !errors.Is(err, ErrPositionNotFound) {
		t.Fatalf("expected ErrPositionNotFound, got %v", err)
	}
}

func TestCareerSuggestions_CachesDefaultQuery(t *testing.T) {
	employees, positions := careerFixtures()
	c := newFakeCache()
	u := NewCareerUsecase(employees, positions, c, 5)

	suggestions, err := u.CareerSuggestions(context.Background(), "emp_001", 0)
	if err != nil {
		t.Fatalf("suggestions: %v", err)
	}
	if len(suggestions) != 1 || suggestions[0].Position != "Senior Analyst" {
		t.Fatalf("expected the reachable role only, got %+v", suggestions)
	}
	if len(c.sets) != 1 || c.sets[0] != cache.SuggestionsKey("emp_001") {
		t.Fatalf("default query must be cached, got %v", c.sets)
	}
}

func TestCareerSuggestions_IncludesCurrentPositions(t *testing.T) {
	employees, positions := careerFixtures()
	positions.current = []position.Position{
		{ID: "pos_cur", Title: "Junior Analyst", Department: "Analytics",
			RequiredSkills: map[string]int{"excel": 3, "sql": 2}},
	}
	u := NewCareerUsecase(employees, positions, nil, 5)

	suggestions, err := u.CareerSuggestions(context.Background(), "emp_001", 0)
	if err != nil {
		t.Fatalf("suggestions: %v", err)
	}
	for _, s := range suggestions {
		if s.Position == "Junior Analyst" {
			return
		}
	}
	t.Fatalf("current positions must be ranked too, got %+v", suggestions)
}

func TestCareerSuggestions_CacheHit(t *testing.T) {
	employees, positions := careerFixtures()
	c := newFakeCache()
	c.hits[cache.SuggestionsKey("emp_001")] = []matching.CareerSuggestion{{Position: "Cached Role"}}

	u := NewCareerUsecase(employees, positions, c, 5)
	suggestions, err := u.CareerSuggestions(context.Background(), "emp_001", 0)
	if err != nil {
		t.Fatalf("suggestions: %v", err)
	}
	if len(suggestions) != 1 || suggestions[0].Position != "Cached Role" {
		t.Fatalf("expected cached result, got %+v", suggestions)
	}
}
