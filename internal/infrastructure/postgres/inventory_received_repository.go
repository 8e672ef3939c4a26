package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/multistore-api/internal/domain/entity"
	"github.com/jhoicas/multistore-api/internal/domain/repository"
)

var _ repository.InventoryReceivedRepository = (*InventoryReceivedRepo)(nil)

// InventoryReceivedRepo implementación de InventoryReceivedRepository sobre PostgreSQL.
type InventoryReceivedRepo struct {
	q Querier
}

// NewInventoryReceivedRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryReceivedRepository(q Querier) *InventoryReceivedRepo {
	return &InventoryReceivedRepo{q: q}
}

// Create registra una recepción de mercancía.
func (r *InventoryReceivedRepo) Create(ctx context.Context, rec *entity.InventoryReceived) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO inventory_received (product_id, quantity, received_date, receipt_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		rec.ProductID, rec.Quantity, rec.ReceivedDate, nullableString(rec.ReceiptURL),
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert inventory received: %w", err)
	}
	return nil
}
