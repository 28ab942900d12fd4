package usecase

import (
	"context"
	"time"

	"career-compass/internal/domain/employee"
	"career-compass/internal/domain/learning"
	"career-compass/internal/domain/matching"
	"career-compass/internal/domain/position"
	"career-compass/internal/repository"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	saveErr   error
}

func newFakeEmployeeRepo(employees ...employee.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: map[string]employee.Employee{}}
	for _, e := range employees {
		r.employees[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Get(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, repository.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) Save(ctx context.Context, e employee.Employee) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.employees[e.ID] = e
	return nil
}

func (r *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.employees[id]; !ok {
		return repository.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

func (r *fakeEmployeeRepo) MostRecent(ctx context.Context) (employee.Employee, error) {
	var best employee.Employee
	found := false
	for _, e := range r.employees {
		if !found || e.UpdatedAt.After(best.UpdatedAt) {
			best, found = e, true
		}
	}
	if !found {
		return employee.Employee{}, repository.ErrEmployeeNotFound
	}
	return best, nil
}

type fakePositionRepo struct {
	open    []position.Position
	current []position.Position
}

func (r *fakePositionRepo) ListOpen(ctx context.Context) ([]position.Position, error) {
	out := make([]position.Position, len(r.open))
	for i, p := range r.open {
		p.IsOpen = true
		out[i] = p
	}
	return out, nil
}

func (r *fakePositionRepo) ListCurrent(ctx context.Context) ([]position.Position, error) {
	return r.current, nil
}

func (r *fakePositionRepo) Get(ctx context.Context, id string) (position.Position, error) {
	for _, p := range r.open {
		if p.ID == id {
			p.IsOpen = true
			return p, nil
		}
	}
	for _, p := range r.current {
		if p.ID == id {
			return p, nil
		}
	}
	return position.Position{}, repository.ErrPositionNotFound
}

// fakeCache records sets and serves pre-seeded hits.
type fakeCache struct {
	hits        map[string]any
	sets        []string
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{hits: map[string]any{}}
}

func (c *fakeCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	v, ok := c.hits[key]
	if !ok {
		return false, nil
	}
	switch dst := out.(type) {
	case *[]matching.PositionMatch:
		*dst = v.([]matching.PositionMatch)
	case *[]matching.CareerSuggestion:
		*dst = v.([]matching.CareerSuggestion)
	case *[]matching.TrendingSkill:
		*dst = v.([]matching.TrendingSkill)
	default:
		return false, nil
	}
	return true, nil
}

func (c *fakeCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	c.sets = append(c.sets, key)
	return nil
}

func (c *fakeCache) InvalidateEmployee(ctx context.Context, employeeID string) error {
	c.invalidated = append(c.invalidated, employeeID)
	return nil
}

func (c *fakeCache) InvalidateTrending(ctx context.Context) error {
	c.invalidated = append(c.invalidated, "trending")
	return nil
}

type fakeNotifier struct {
	employeeEvents []string
	plans          []learning.Plan
}

func (n *fakeNotifier) EmployeeUpdated(employeeID string) {
	n.employeeEvents = append(n.employeeEvents, employeeID)
}

func (n *fakeNotifier) PlanCreated(plan learning.Plan) {
	n.plans = append(n.plans, plan)
}

type fakeGenerator struct {
	resources []learning.Resource
	calls     int
	lastGaps  []matching.SkillGap
	lastMax   int
}

func (g *fakeGenerator) Generate(ctx context.Context, gaps []matching.SkillGap, maxResources int) []learning.Resource {
	g.calls++
	g.lastGaps = gaps
	g.lastMax = maxResources
	return g.resources
}
