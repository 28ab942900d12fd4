package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"career-compass/internal/domain/employee"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type EmployeeUsecase interface {
	ListEmployees(ctx context.Context) ([]employee.Employee, error)
	GetEmployee(ctx context.Context, id string) (employee.Employee, error)
	SaveEmployee(ctx context.Context, e employee.Employee) (employee.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
	MostRecentEmployee(ctx context.Context) (employee.Employee, error)
}

type Employee struct {
	repo     repository.EmployeeRepository
	cache    Cache
	notifier Notifier
}

func NewEmployeeUsecase(repo repository.EmployeeRepository, cache Cache, notifier Notifier) *Employee {
	if cache == nil {
		cache = NopCache{}
	}
	return &Employee{repo: repo, cache: cache, notifier: notifier}
}

func (u *Employee) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	employees, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	sort.SliceStable(employees, func(i, j int) bool {
		return employees[i].UpdatedAt.After(employees[j].UpdatedAt)
	})
	return employees, nil
}

func (u *Employee) GetEmployee(ctx context.Context, id string) (employee.Employee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return employee.Employee{}, ErrInvalidInput
	}

	e, err := u.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return employee.Employee{}, ErrEmployeeNotFound
		}
		return employee.Employee{}, ErrInternal
	}
	return e, nil
}

// SaveEmployee upserts a profile. A missing id gets a generated one;
// CreatedAt is kept for existing profiles and UpdatedAt always moves to
// now. Cached computations for the employee are invalidated.
func (u *Employee) SaveEmployee(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return employee.Employee{}, ErrInvalidInput
	}
	if e.Skills == nil {
		e.Skills = map[string]int{}
	}
	for skill, level := range e.Skills {
		if strings.TrimSpace(skill) == "" || level < 1 || level > 5 {
			return employee.Employee{}, ErrInvalidInput
		}
	}

	now := time.Now().UTC()
	e.ID = strings.TrimSpace(e.ID)
	if e.ID == "" {
		e.ID = "emp_" + uuid.NewString()
		e.CreatedAt = now
	} else if existing, err := u.repo.Get(ctx, e.ID); err == nil {
		e.CreatedAt = existing.CreatedAt
	} else if errors.Is(err, repository.ErrEmployeeNotFound) {
		e.CreatedAt = now
	} else {
		return employee.Employee{}, ErrInternal
	}
	e.UpdatedAt = now

	if err := u.repo.Save(ctx, e); err != nil {
		return employee.Employee{}, ErrInternal
	}

	_ = u.cache.InvalidateEmployee(ctx, e.ID)
	if u.notifier != nil {
		u.notifier.EmployeeUpdated(e.ID)
	}
	return e, nil
}

func (u *Employee) DeleteEmployee(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return ErrEmployeeNotFound
		}
		return ErrInternal
	}

	_ = u.cache.InvalidateEmployee(ctx, id)
	return nil
}

func (u *Employee) MostRecentEmployee(ctx context.Context) (employee.Employee, error) {
	e, err := u.repo.MostRecent(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return employee.Employee{}, ErrEmployeeNotFound
		}
		return employee.Employee{}, ErrInternal
	}
	return e, nil
}
