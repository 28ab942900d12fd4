package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"career-compass/internal/database"
	"career-compass/internal/domain/position"

	"github.com/jackc/pgx/v5"
)

// PostgresPositionRepository reads the position catalog from a single
// table; the is_open flag splits open listings from current roles.
type PostgresPositionRepository struct {
	db database.DB
}

func NewPostgresPositionRepository(db database.DB) *PostgresPositionRepository {
	return &PostgresPositionRepository{db: db}
}

const positionColumns = `id, title, department, COALESCE(level, ''),
	COALESCE(required_skills, '{}'::jsonb), COALESCE(preferred_skills, '{}'::jsonb),
	COALESCE(description, ''), is_open, COALESCE(location, ''), COALESCE(posted_date, '')`

func (r *PostgresPositionRepository) ListOpen(ctx context.Context) ([]position.Position, error) {
	return r.list(ctx, `SELECT `+positionColumns+` FROM positions WHERE is_open = true ORDER BY id ASC`)
}

func (r *PostgresPositionRepository) ListCurrent(ctx context.Context) ([]position.Position, error) {
	return r.list(ctx, `SELECT `+positionColumns+` FROM positions WHERE is_open = false ORDER BY id ASC`)
}

func (r *PostgresPositionRepository) Get(ctx context.Context, id string) (position.Position, error) {
	row := r.db.QueryRow(ctx, `SELECT `+positionColumns+` FROM positions WHERE id = $1`, id)
	p, err := scanPosition(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return position.Position{}, ErrPositionNotFound
		}
		return position.Position{}, err
	}
	return p, nil
}

func (r *PostgresPositionRepository) list(ctx context.Context, query string) ([]position.Position, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]position.Position, 0)
	for rows.Next() {
		p, err := scanPosition(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanPosition(row scanner) (position.Position, error) {
	var (
		p         position.Position
		required  []byte
		preferred []byte
	)
	if err := row.Scan(&p.ID, &p.Title, &p.Department, &p.Level,
		&required, &preferred, &p.Description, &p.IsOpen, &p.Location, &p.PostedDate); err != nil {
		return position.Position{}, err
	}
	if err := json.Unmarshal(required, &p.RequiredSkills); err != nil {
		return position.Position{}, fmt.Errorf("decode required skills: %w", err)
	}
	if err := json.Unmarshal(preferred, &p.PreferredSkills); err != nil {
		return position.Position{}, fmt.Errorf("decode preferred skills: %w", err)
	}
	return p, nil
}
