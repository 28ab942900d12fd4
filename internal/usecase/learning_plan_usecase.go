package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"career-compass/internal/domain/learning"
	"career-compass/internal/domain/matching"
	"career-compass/internal/domain/position"
	"career-compass/internal/repository"
	"career-compass/internal/resourcegen"
)

// PlanRequest carries the tunables of one plan build. UseExternal nil
// means "use the configured default"; MaxResources 0 likewise.
type PlanRequest struct {
	TargetRole   string
	UseExternal  *bool
	MaxResources int
}

type LearningPlanUsecase interface {
	BuildPlan(ctx context.Context, employeeID string, req PlanRequest) (learning.Plan, error)
	// SkillRecommendations generates resources for a single skill
	// without a stored employee profile.
	SkillRecommendations(ctx context.Context, skill string, currentLevel, targetLevel int) ([]learning.Resource, error)
}

type LearningPlan struct {
	employees repository.EmployeeRepository
	positions repository.PositionRepository
	remote    resourcegen.Generator
	offline   resourcegen.Generator
	notifier  Notifier

	useRemoteDefault bool
	maxResources     int
}

// NewLearningPlanUsecase wires both generation strategies. remote may
// be nil when no API key is configured; the offline strategy is
// mandatory.
func NewLearningPlanUsecase(
	employees repository.EmployeeRepository,
	positions repository.PositionRepository,
	remote, offline resourcegen.Generator,
	notifier Notifier,
	useRemoteDefault bool,
	maxResources int,
) *LearningPlan {
	return &LearningPlan{
		employees:        employees,
		positions:        positions,
		remote:           remote,
		offline:          offline,
		notifier:         notifier,
		useRemoteDefault: useRemoteDefault,
		maxResources:     maxResources,
	}
}

func (u *LearningPlan) BuildPlan(ctx context.Context, employeeID string, req PlanRequest) (learning.Plan, error) {
	employeeID = strings.TrimSpace(employeeID)
	req.TargetRole = strings.TrimSpace(req.TargetRole)
	if employeeID == "" || req.TargetRole == "" {
		return learning.Plan{}, ErrInvalidInput
	}

	emp, err := u.employees.Get(ctx, employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return learning.Plan{}, ErrEmployeeNotFound
		}
		return learning.Plan{}, ErrInternal
	}

	required, err := u.resolveTargetSkills(ctx, req.TargetRole)
	if err != nil {
		return learning.Plan{}, err
	}

	gaps := matching.Gaps(emp.Skills, required)

	maxResources := req.MaxResources
	if maxResources <= 0 {
		maxResources = u.maxResources
	}
	resources := u.generator(req.UseExternal).Generate(ctx, gaps, maxResources)

	plan := learning.Plan{
		EmployeeID:        employeeID,
		TargetRole:        req.TargetRole,
		SkillGaps:         gaps,
		Resources:         resources,
		EstimatedDuration: learning.EstimateDuration(resources),
		CreatedAt:         time.Now().UTC(),
	}

	if u.notifier != nil {
		u.notifier.PlanCreated(plan)
	}
	return plan, nil
}

func (u *LearningPlan) SkillRecommendations(ctx context.Context, skill string, currentLevel, targetLevel int) ([]learning.Resource, error) {
	skill = strings.ToLower(strings.TrimSpace(skill))
	if skill == "" {
		return nil, ErrInvalidInput
	}
	if targetLevel <= 0 {
		targetLevel = 4
	}
	if currentLevel < 0 || currentLevel >= targetLevel {
		return nil, ErrInvalidInput
	}

	// Single-skill requests never rank below medium urgency.
	gap := matching.SkillGap{
		SkillName:     skill,
		CurrentLevel:  currentLevel,
		RequiredLevel: targetLevel,
		Gap:           targetLevel - currentLevel,
		Priority:      matching.PriorityMedium,
	}
	if gap.Gap >= 3 {
		gap.Priority = matching.PriorityHigh
	}

	return u.generator(nil).Generate(ctx, []matching.SkillGap{gap}, u.maxResources), nil
}

// resolveTargetSkills maps a target role to required skill levels:
// catalog positions win (case-insensitive title or id, open catalog
// first), then role inference from the name.
func (u *LearningPlan) resolveTargetSkills(ctx context.Context, targetRole string) (map[string]int, error) {
	open, err := u.positions.ListOpen(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	current, err := u.positions.ListCurrent(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	if pos, ok := findPosition(append(open, current...), targetRole); ok {
		return pos.RequiredSkills, nil
	}

	// An unrecognizable role is not an error: the empty map flows
	// through as a plan with no gaps and no resources.
	return learning.InferRequiredSkills(targetRole), nil
}

func findPosition(positions []position.Position, targetRole string) (position.Position, bool) {
	needle := strings.ToLower(targetRole)
	for _, p := range positions {
		if strings.ToLower(p.Title) == needle || strings.ToLower(p.ID) == needle {
			return p, true
		}
	}
	return position.Position{}, false
}

func (u *LearningPlan) generator(useExternal *bool) resourcegen.Generator {
	useRemote := u.useRemoteDefault
	if useExternal != nil {
		useRemote = *useExternal
	}
	if useRemote && u.remote != nil {
		return u.remote
	}
	return u.offline
}
