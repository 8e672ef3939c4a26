package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/multistore-api/internal/domain/entity"
	"github.com/jhoicas/multistore-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la cabecera y sus ítems. Los ítems van en un batch; llamar dentro de una tx.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO sales (customer_id, sale_date, total_cost, total_price, markup_percent)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		s.CustomerID, s.SaleDate, s.TotalCost, s.TotalPrice, s.MarkupPercent,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	if len(s.Items) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i := range s.Items {
		item := &s.Items[i]
		item.SaleID = s.ID
		batch.Queue(`
			INSERT INTO sale_items (sale_id, product_id, quantity, cost_price, sale_price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			item.SaleID, item.ProductID, item.Quantity, item.CostPrice, item.SalePrice,
		).QueryRow(func(row pgx.Row) error {
			return row.Scan(&item.ID)
		})
	}
	if err := r.q.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert sale items: %w", err)
	}
	return nil
}
