package learning

import (
	"reflect"
	"testing"
)

func TestInferRequiredSkills_RoleTable(t *testing.T) {
	got := InferRequiredSkills("Senior Data Analyst")
	want := map[string]int{"python": 3, "sql": 3, "data_analysis": 3, "statistics": 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected skills: %v", got)
	}
}

func TestInferRequiredSkills_FirstRuleWins(t *testing.T) {
	// matches both "data analyst" and the keyword scan; the table entry
	// must take precedence and scanning must not run
	got := InferRequiredSkills("data analyst with machine learning focus")
	if _, ok := got["machine_learning"]; ok {
		t.Fatalf("keyword scan ran despite role-table hit: %v", got)
	}
	if len(got) != 4 {
		t.Fatalf("expected the data-analyst rule's 4 skills, got %v", got)
	}
}

func TestInferRequiredSkills_KeywordScan(t *testing.T) {
	got := InferRequiredSkills("Machine Learning Specialist")
	if got["machine_learning"] != 4 {
		t.Fatalf("expected machine_learning at level 4, got %v", got)
	}
}

func TestInferRequiredSkills_SpacedKeyword(t *testing.T) {
	got := InferRequiredSkills("Head of Project Management")
	if got["project_management"] != 3 {
		t.Fatalf("underscored keyword must match spaced form, got %v", got)
	}
}

func TestInferRequiredSkills_Unknown(t *testing.T) {
	got := InferRequiredSkills("Chief Vibes Officer")
	if len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
}

func TestLevelForCurrent(t *testing.T) {
	cases := []struct {
		level int
		want  string
	}{
		{0, "beginner"},
		{1, "intermediate"},
		{2, "intermediate"},
		{3, "advanced"},
		{5, "advanced"},
	}
	for _, tc := range cases {
		if got := LevelForCurrent(tc.level); got != tc.want {
			t.Fatalf("level %d: expected %s, got %s", tc.level, tc.want, got)
		}
	}
}
