package repository

import (
	"context"

	"github.com/jhoicas/multistore-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas.
type SaleRepository interface {
	// Create persiste la cabecera y todos sale.Items. La atomicidad la da el TxRunner.
	Create(ctx context.Context, sale *entity.Sale) error
}
