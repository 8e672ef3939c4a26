package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/multistore-api/internal/domain"
	"github.com/jhoicas/multistore-api/internal/domain/entity"
	"github.com/jhoicas/multistore-api/internal/domain/repository"
)

var _ repository.SourceRepository = (*SourceRepo)(nil)

// SourceRepo implementación de SourceRepository sobre PostgreSQL.
type SourceRepo struct {
	q Querier
}

// NewSourceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSourceRepository(q Querier) *SourceRepo {
	return &SourceRepo{q: q}
}

// Create persiste un proveedor. Nombre repetido -> domain.ErrDuplicate.
func (r *SourceRepo) Create(ctx context.Context, s *entity.Source) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO sources (name) VALUES ($1) RETURNING id, created_at, updated_at`, s.Name,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert source: %w", err)
	}
	return nil
}

// GetByName busca un proveedor por nombre exacto.
func (r *SourceRepo) GetByName(ctx context.Context, name string) (*entity.Source, error) {
	var s entity.Source
	err := r.q.QueryRow(ctx, `SELECT id, name, created_at, updated_at FROM sources WHERE name = $1`, name).
		Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get source: %w", err)
	}
	return &s, nil
}
