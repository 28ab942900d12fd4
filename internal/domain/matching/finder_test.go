package matching

import (
	"strings"
	"testing"

	"career-compass/internal/domain/employee"
	"career-compass/internal/domain/position"
)

func testEmployee(skills map[string]int) employee.Employee {
	return employee.Employee{ID: "emp-1", Name: "Dina", Skills: skills}
}

func TestFindMatches_ThresholdAndOrder(t *testing.T) {
	emp := testEmployee(map[string]int{"python": 4, "sql": 2})
	positions := []position.Position{
		{ID: "p1", Title: "Data Analyst", RequiredSkills: map[string]int{"python": 4, "sql": 4}}, // 6/8 = 0.75
		{ID: "p2", Title: "Python Dev", RequiredSkills: map[string]int{"python": 4}},             // 1.0
		{ID: "p3", Title: "DBA", RequiredSkills: map[string]int{"sql": 5, "db_admin": 5}},        // 2/10 = 0.2
	}

	matches := FindMatches(emp, positions, 0.7, 5)

	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Position.ID != "p2" || matches[1].Position.ID != "p1" {
		t.Fatalf("unexpected order: %s, %s", matches[0].Position.ID, matches[1].Position.ID)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].MatchScore > matches[i-1].MatchScore {
			t.Fatalf("matches not sorted non-increasing at %d", i)
		}
	}
}

func TestFindMatches_TieKeepsCatalogOrder(t *testing.T) {
	emp := testEmployee(map[string]int{"python": 4})
	positions := []position.Position{
		{ID: "first", RequiredSkills: map[string]int{"python": 4}},
		{ID: "second", RequiredSkills: map[string]int{"python": 4}},
	}

	matches := FindMatches(emp, positions, 0.0, 10)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Position.ID != "first" || matches[1].Position.ID != "second" {
		t.Fatalf("equal scores must keep catalog order, got %s then %s",
			matches[0].Position.ID, matches[1].Position.ID)
	}
}

func TestFindMatches_TopNTruncates(t *testing.T) {
	emp := testEmployee(map[string]int{"python": 4})
	positions := make([]position.Position, 0, 8)
	for i := 0; i < 8; i++ {
		positions = append(positions, position.Position{
			ID:             string(rune('a' + i)),
			RequiredSkills: map[string]int{"python": 4},
		})
	}

	matches := FindMatches(emp, positions, 0.0, 3)
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
}

func TestFindMatches_MissingSkills(t *testing.T) {
	emp := testEmployee(map[string]int{"python": 1})
	positions := []position.Position{
		{ID: "p1", RequiredSkills: map[string]int{"python": 2, "sql": 3, "docker": 2}},
	}

	matches := FindMatches(emp, positions, 0.0, 5)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	missing := matches[0].MissingSkills
	if len(missing) != 2 {
		t.Fatalf("expected 2 missing skills, got %v", missing)
	}
	if missing["sql"] != 3 || missing["docker"] != 2 {
		t.Fatalf("unexpected missing map: %v", missing)
	}
}

func TestFindMatches_RecommendationTiers(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0.95, "Excellent match"},
		{0.85, "Very good match"},
		{0.75, "Good match"},
		{0.40, "Partial match"},
	}
	for _, tc := range cases {
		rec := buildRecommendation(tc.score, nil, nil)
		if !strings.HasPrefix(rec, tc.want) {
			t.Fatalf("score %v: expected prefix %q, got %q", tc.score, tc.want, rec)
		}
	}
}

func TestBuildRecommendation_GapAndMissingClauses(t *testing.T) {
	gaps := []SkillGap{
		{SkillName: "kubernetes", Gap: 4, Priority: PriorityHigh},
		{SkillName: "terraform", Gap: 3, Priority: PriorityHigh},
		{SkillName: "go", Gap: 3, Priority: PriorityHigh},
		{SkillName: "aws", Gap: 3, Priority: PriorityHigh},
		{SkillName: "sql", Gap: 2, Priority: PriorityMedium},
	}
	missing := map[string]int{"kubernetes": 4, "terraform": 3}

	rec := buildRecommendation(0.5, gaps, missing)

	if !strings.Contains(rec, "Focus on developing: kubernetes, terraform, go.") {
		t.Fatalf("high-priority clause must name at most 3 skills: %q", rec)
	}
	if !strings.Contains(rec, "Consider learning: kubernetes, terraform.") {
		t.Fatalf("missing-skill clause must name skills when <= 2: %q", rec)
	}

	many := map[string]int{"a": 1, "b": 2, "c": 3}
	rec = buildRecommendation(0.5, nil, many)
	if !strings.Contains(rec, "3 new skills needed for this role.") {
		t.Fatalf("missing-skill clause must state the count when > 2: %q", rec)
	}
}
