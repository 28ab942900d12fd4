package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"career-compass/internal/domain/employee"
)

type EmployeeRepository interface {
	List(ctx context.Context) ([]employee.Employee, error)
	Get(ctx context.Context, id string) (employee.Employee, error)
	Save(ctx context.Context, e employee.Employee) error
	Delete(ctx context.Context, id string) error
	// MostRecent returns the employee with the newest UpdatedAt.
	MostRecent(ctx context.Context) (employee.Employee, error)
}

const employeesFile = "employees.json"

type employeesDocument struct {
	Employees []employee.Employee `json:"employees"`
}

// JSONEmployeeRepository keeps employees in a single JSON document on
// disk. Every write rewrites the whole file, so the mutex also covers
// read-modify-write sequences.
type JSONEmployeeRepository struct {
	path string
	mu   sync.Mutex
}

func NewJSONEmployeeRepository(dataDir string) *JSONEmployeeRepository {
	return &JSONEmployeeRepository{path: filepath.Join(dataDir, employeesFile)}
}

func (r *JSONEmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	return doc.Employees, nil
}

func (r *JSONEmployeeRepository) Get(ctx context.Context, id string) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return employee.Employee{}, err
	}
	for _, e := range doc.Employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, ErrEmployeeNotFound
}

func (r *JSONEmployeeRepository) Save(ctx context.Context, e employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range doc.Employees {
		if existing.ID == e.ID {
			doc.Employees[i] = e
			replaced = true
			break
		}
	}
	if !replaced {
		doc.Employees = append(doc.Employees, e)
	}

	return r.store(doc)
}

func (r *JSONEmployeeRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}

	kept := doc.Employees[:0]
	found := false
	for _, e := range doc.Employees {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return ErrEmployeeNotFound
	}
	doc.Employees = kept

	return r.store(doc)
}

func (r *JSONEmployeeRepository) MostRecent(ctx context.Context) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return employee.Employee{}, err
	}
	if len(doc.Employees) == 0 {
		return employee.Employee{}, ErrEmployeeNotFound
	}

	sorted := make([]employee.Employee, len(doc.Employees))
	copy(sorted, doc.Employees)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})
	return sorted[0], nil
}

// load reads the whole document; a missing file is an empty store.
func (r *JSONEmployeeRepository) load() (employeesDocument, error) {
	var doc employeesDocument

	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return doc, fmt.Errorf("read %s: %w", r.path, err)
	}

	if err := json.Unmarshal(raw, &doc); err != nil {
		return employeesDocument{}, fmt.Errorf("decode %s: %w", r.path, err)
	}
	return doc, nil
}

func (r *JSONEmployeeRepository) store(doc employeesDocument) error {
	if doc.Employees == nil {
		doc.Employees = []employee.Employee{}
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("ensure data dir: %w", err)
	}
	if err := os.WriteFile(r.path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	return nil
}
