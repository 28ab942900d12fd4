package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"career-compass/internal/domain/position"
)

type PositionRepository interface {
	// ListOpen returns the open position catalog; every entry has
	// IsOpen forced to true regardless of what the store says.
	ListOpen(ctx context.Context) ([]position.Position, error)
	// ListCurrent returns the catalog of positions employees hold today.
	ListCurrent(ctx context.Context) ([]position.Position, error)
	// Get searches open positions first, then current ones.
	Get(ctx context.Context, id string) (position.Position, error)
}

const positionsFile = "positions.json"

type positionsDocument struct {
	CurrentPositions []position.Position `json:"current_positions"`
	OpenPositions    []position.Position `json:"open_positions"`
}

// JSONPositionRepository reads the position catalog from a single JSON
// document. The catalog is treated as read-mostly reference data.
type JSONPositionRepository struct {
	path string
	mu   sync.Mutex
}

func NewJSONPositionRepository(dataDir string) *JSONPositionRepository {
	return &JSONPositionRepository{path: filepath.Join(dataDir, positionsFile)}
}

func (r *JSONPositionRepository) ListOpen(ctx context.Context) ([]position.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	open := make([]position.Position, len(doc.OpenPositions))
	for i, p := range doc.OpenPositions {
		p.IsOpen = true
		open[i] = p
	}
	return open, nil
}

func (r *JSONPositionRepository) ListCurrent(ctx context.Context) ([]position.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	return doc.CurrentPositions, nil
}

func (r *JSONPositionRepository) Get(ctx context.Context, id string) (position.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return position.Position{}, err
	}
	for _, p := range doc.OpenPositions {
		if p.ID == id {
			p.IsOpen = true
			return p, nil
		}
	}
	for _, p := range doc.CurrentPositions {
		if p.ID == id {
			return p, nil
		}
	}
	return position.Position{}, ErrPositionNotFound
}

func (r *JSONPositionRepository) load() (positionsDocument, error) {
	var doc positionsDocument

	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return doc, fmt.Errorf("read %s: %w", r.path, err)
	}

	if err := json.Unmarshal(raw, &doc); err != nil {
		return positionsDocument{}, fmt.Errorf("decode %s: %w", r.path, err)
	}
	return doc, nil
}
