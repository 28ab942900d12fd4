package learning

import "strings"

// defaultInferredLevel is assigned to every skill inferred from a role
// name; intermediate proficiency is assumed when nothing more is known.
const defaultInferredLevel = 3

type roleRule struct {
	pattern string
	skills  []string
}

// roleRules is deliberately an ordered list: substring matching is
// heuristic and the first matching rule wins, which keeps inference
// reproducible. "senior full stack developer" hits the full-stack rule
// even though it also contains "developer".
var roleRules = []roleRule{
	{"data analyst", []string{"python", "sql", "data_analysis", "statistics"}},
	{"software developer", []string{"python", "javascript", "sql", "problem_solving"}},
	{"project manager", []string{"project_management", "leadership", "communication", "agile"}},
	{"machine learning engineer", []string{"python", "machine_learning", "statistics", "data_analysis"}},
	{"full stack developer", []string{"javascript", "react", "nodejs", "sql"}},
	{"product manager", []string{"business_analysis", "project_management", "communication", "agile"}},
	{"data scientist", []string{"python", "machine_learning", "statistics", "data_analysis"}},
	{"frontend developer", []string{"javascript", "react", "web_development"}},
	{"backend developer", []string{"python", "nodejs", "sql", "web_development"}},
}

type skillKeyword struct {
	keyword string
	level   int
}

// skillKeywords backs the flat scan used when no role rule matches.
// Keywords with underscores also match their spaced spelling.
var skillKeywords = []skillKeyword{
	{"python", 3},
	{"javascript", 3},
	{"sql", 3},
	{"machine_learning", 4},
	{"data_analysis", 3},
	{"project_management", 3},
	{"leadership", 3},
	{"communication", 3},
	{"agile", 3},
	{"react", 3},
	{"nodejs", 3},
}

// InferRequiredSkills guesses a required-skill map from a free-text
// role name: first by the ordered role table, then by scanning for
// individual skill keywords. An unrecognizable role yields an empty
// map, which is not an error.
func InferRequiredSkills(roleName string) map[string]int {
	role := strings.ToLower(roleName)

	required := make(map[string]int)
	for _, rule := range roleRules {
		if strings.Contains(role, rule.pattern) {
			for _, skill := range rule.skills {
				required[skill] = defaultInferredLevel
			}
			return required
		}
	}

	for _, kw := range skillKeywords {
		spaced := strings.ReplaceAll(kw.keyword, "_", " ")
		if strings.Contains(role, kw.keyword) || strings.Contains(role, spaced) {
			required[kw.keyword] = kw.level
		}
	}
	return required
}
