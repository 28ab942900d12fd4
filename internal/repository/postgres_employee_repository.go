package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"career-compass/internal/database"
	"career-compass/internal/domain/employee"

	"github.com/jackc/pgx/v5"
)

// PostgresEmployeeRepository stores skill maps and goal lists as jsonb
// columns so the profile shape stays identical to the JSON store.
type PostgresEmployeeRepository struct {
	db database.DB
}

func NewPostgresEmployeeRepository(db database.DB) *PostgresEmployeeRepository {
	return &PostgresEmployeeRepository{db: db}
}

const employeeColumns = `id, name, email, current_position, department,
	COALESCE(skills, '{}'::jsonb), COALESCE(career_goals, '[]'::jsonb),
	COALESCE(target_roles, '[]'::jsonb), created_at, updated_at`

func (r *PostgresEmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+employeeColumns+` FROM employees ORDER BY updated_at DESC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]employee.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresEmployeeRepository) Get(ctx context.Context, id string) (employee.Employee, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
	e, err := scanEmployee(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *PostgresEmployeeRepository) Save(ctx context.Context, e employee.Employee) error {
	skills, err := json.Marshal(orEmptyMap(e.Skills))
	if err != nil {
		return fmt.Errorf("encode skills: %w", err)
	}
	goals, err := json.Marshal(orEmptyList(e.CareerGoals))
	if err != nil {
		return fmt.Errorf("encode career goals: %w", err)
	}
	targets, err := json.Marshal(orEmptyList(e.TargetRoles))
	if err != nil {
		return fmt.Errorf("encode target roles: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO employees (id, name, email, current_position, department,
			skills, career_goals, target_roles, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		 ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			current_position = EXCLUDED.current_position,
			department = EXCLUDED.department,
			skills = EXCLUDED.skills,
			career_goals = EXCLUDED.career_goals,
			target_roles = EXCLUDED.target_roles,
			updated_at = EXCLUDED.updated_at`,
		e.ID, e.Name, e.Email, e.CurrentPosition, e.Department,
		skills, goals, targets, e.CreatedAt, e.UpdatedAt,
	)
	return err
}

func (r *PostgresEmployeeRepository) Delete(ctx context.Context, id string) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func (r *PostgresEmployeeRepository) MostRecent(ctx context.Context) (employee.Employee, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees ORDER BY updated_at DESC LIMIT 1`)
	e, err := scanEmployee(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row scanner) (employee.Employee, error) {
	var (
		e       employee.Employee
		skills  []byte
		goals   []byte
		targets []byte
		created time.Time
		updated time.Time
	)
	if err := row.Scan(&e.ID, &e.Name, &e.Email, &e.CurrentPosition, &e.Department,
		&skills, &goals, &targets, &created, &updated); err != nil {
		return employee.Employee{}, err
	}
	if err := json.Unmarshal(skills, &e.Skills); err != nil {
		return employee.Employee{}, fmt.Errorf("decode skills: %w", err)
	}
	if err := json.Unmarshal(goals, &e.CareerGoals); err != nil {
		return employee.Employee{}, fmt.Errorf("decode career goals: %w", err)
	}
	if err := json.Unmarshal(targets, &e.TargetRoles); err != nil {
		return employee.Employee{}, fmt.Errorf("decode target roles: %w", err)
	}
	e.CreatedAt = created
	e.UpdatedAt = updated
	return e, nil
}

func orEmptyMap(m map[string]int) map[string]int {
	if m == nil {
		return map[string]int{}
	}
	return m
}

func orEmptyList(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
