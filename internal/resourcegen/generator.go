// Package resourcegen selects learning resources for a ranked list of
// skill gaps. Two strategies exist: an offline deterministic one built
// on fixed templates, and a Gemini-backed one that degrades to the
// template fallback on any failure. Callers pick a strategy up front;
// both honor the same contract: a non-empty result for a non-empty gap
// list, and no error surfaces past this boundary.
package resourcegen

import (
	"context"

	"career-compass/internal/domain/learning"
	"career-compass/internal/domain/matching"
)

const defaultMaxResources = 10

// Generator turns skill gaps into learning resources.
type Generator interface {
	Generate(ctx context.Context, gaps []matching.SkillGap, maxResources int) []learning.Resource
}

func normalizeMax(maxResources int) int {
	if maxResources <= 0 {
		return defaultMaxResources
	}
	return maxResources
}
