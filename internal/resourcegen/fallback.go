package resourcegen

import (
	"context"
	"fmt"
	"strings"

	"career-compass/internal/domain/learning"
	"career-compass/internal/domain/matching"
)

type basicTemplate struct {
	Title       string
	Provider    string
	Type        string
	Duration    string
	Description string
}

// basicTemplates backs the offline strategy: one curated entry per
// well-known skill, a generic template for everything else.
var basicTemplates = map[string]basicTemplate{
	"python": {
		Title:       "Python Programming Course",
		Provider:    "Online Learning",
		Type:        "course",
		Duration:    "6-8 weeks",
		Description: "Comprehensive Python programming course",
	},
	"javascript": {
		Title:       "JavaScript Fundamentals",
		Provider:    "Web Development Platform",
		Type:        "course",
		Duration:    "4-6 weeks",
		Description: "Learn JavaScript from basics to advanced",
	},
	"machine_learning": {
		Title:       "Machine Learning Essentials",
		Provider:    "Data Science Platform",
		Type:        "specialization",
		Duration:    "3 months",
		Description: "Complete machine learning course",
	},
	"project_management": {
		Title:       "Project Management Fundamentals",
		Provider:    "Professional Development",
		Type:        "certification",
		Duration:    "8 weeks",
		Description: "Learn project management best practices",
	},
}

type namedResource struct {
	Title    string
	Provider string
	Type     string
	Level    string
	URL      string
}

// fallbackCatalog backs the degraded path of the remote strategy with
// concrete, stable resource entries per skill.
var fallbackCatalog = map[string]namedResource{
	"python": {
		Title:    "Python for Everybody Specialization",
		Provider: "Coursera",
		Type:     "specialization",
		Level:    "beginner",
		URL:      "https://coursera.org/specializations/python",
	},
	"javascript": {
		Title:    "JavaScript: The Complete Guide",
		Provider: "Udemy",
		Type:     "course",
		Level:    "beginner",
		URL:      "https://udemy.com/javascript-complete-guide",
	},
	"machine_learning": {
		Title:    "Machine Learning Specialization",
		Provider: "Coursera",
		Type:     "specialization",
		Level:    "intermediate",
		URL:      "https://coursera.org/specializations/machine-learning-introduction",
	},
	"project_management": {
		Title:    "Google Project Management Certificate",
		Provider: "Coursera",
		Type:     "certification",
		Level:    "beginner",
		URL:      "https://coursera.org/professional-certificates/google-project-management",
	},
}

// Offline is the deterministic template-based generator.
type Offline struct{}

func NewOffline() *Offline {
	return &Offline{}
}

// Generate emits one templated resource per gap, in gap order, capped
// at maxResources. It never fails and ignores ctx by construction.
func (o *Offline) Generate(_ context.Context, gaps []matching.SkillGap, maxResources int) []learning.Resource {
	maxResources = normalizeMax(maxResources)
	if len(gaps) > maxResources {
		gaps = gaps[:maxResources]
	}

	resources := make([]learning.Resource, 0, len(gaps))
	for i, gap := range gaps {
		tpl, ok := basicTemplates[gap.SkillName]
		if !ok {
			tpl = basicTemplate{
				Title:       fmt.Sprintf("Learn %s", titleCase(gap.SkillName)),
				Provider:    "Online Platform",
				Type:        "course",
				Duration:    "4-6 weeks",
				Description: fmt.Sprintf("Develop your %s skills", spaced(gap.SkillName)),
			}
		}

		resources = append(resources, learning.Resource{
			ID:          fmt.Sprintf("basic_%d", i+1),
			Title:       tpl.Title,
			Type:        tpl.Type,
			Provider:    tpl.Provider,
			Duration:    tpl.Duration,
			Skills:      []string{gap.SkillName},
			Level:       learning.LevelForCurrent(gap.CurrentLevel),
			URL:         "https://example.com/" + gap.SkillName,
			Description: tpl.Description,
			Rating:      4.0,
			Price:       "Variable",
			IsInternal:  false,
		})
	}
	return resources
}

// fallbackResources is the degraded path behind the remote strategy:
// catalog entry per gap when one exists, generic resource otherwise.
// Deterministic for a given gap list.
func fallbackResources(gaps []matching.SkillGap, maxResources int) []learning.Resource {
	maxResources = normalizeMax(maxResources)

	resources := make([]learning.Resource, 0, maxResources)
	for _, gap := range gaps {
		if len(resources) >= maxResources {
			break
		}

		id := fmt.Sprintf("fallback_%d", len(resources)+1)
		if entry, ok := fallbackCatalog[gap.SkillName]; ok {
			resources = append(resources, learning.Resource{
				ID:          id,
				Title:       entry.Title,
				Type:        entry.Type,
				Provider:    entry.Provider,
				Duration:    "Variable",
				Skills:      []string{gap.SkillName},
				Level:       entry.Level,
				URL:         entry.URL,
				Description: fmt.Sprintf("Learn %s with this comprehensive resource", gap.SkillName),
				Rating:      4.0,
				Price:       "Variable",
				IsInternal:  false,
			})
			continue
		}

		level := "beginner"
		if gap.CurrentLevel > 0 {
			level = "intermediate"
		}
		resources = append(resources, learning.Resource{
			ID:          id,
			Title:       fmt.Sprintf("Learn %s", titleCase(gap.SkillName)),
			Type:        "course",
			Provider:    "Online Learning Platform",
			Duration:    "4-6 weeks",
			Skills:      []string{gap.SkillName},
			Level:       level,
			URL:         "https://search.google.com/search?q=" + strings.ReplaceAll(gap.SkillName, "_", "+") + "+online+course",
			Description: fmt.Sprintf("Comprehensive %s learning resource", spaced(gap.SkillName)),
			Rating:      4.0,
			Price:       "Variable",
			IsInternal:  false,
		})
	}
	return resources
}

func spaced(skill string) string {
	return strings.ReplaceAll(skill, "_", " ")
}

func titleCase(skill string) string {
	words := strings.Fields(spaced(skill))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
