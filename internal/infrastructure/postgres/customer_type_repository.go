package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/multistore-api/internal/domain/entity"
	"github.com/jhoicas/multistore-api/internal/domain/repository"
)

var _ repository.CustomerTypeRepository = (*CustomerTypeRepo)(nil)

// CustomerTypeRepo implementación de CustomerTypeRepository sobre PostgreSQL.
type CustomerTypeRepo struct {
	q Querier
}

// NewCustomerTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerTypeRepository(q Querier) *CustomerTypeRepo {
	return &CustomerTypeRepo{q: q}
}

// EnsureByName inserta el tipo si falta y devuelve la fila (nueva o existente).
func (r *CustomerTypeRepo) EnsureByName(ctx context.Context, name string) (*entity.CustomerType, error) {
	var t entity.CustomerType
	err := r.q.QueryRow(ctx, `
		INSERT INTO customer_types (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, created_at, updated_at`, name,
	).Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("ensure customer type: %w", err)
	}
	return &t, nil
}
