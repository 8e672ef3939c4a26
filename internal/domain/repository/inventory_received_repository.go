package repository

import (
	"context"

	"github.com/jhoicas/multistore-api/internal/domain/entity"
)

// InventoryReceivedRepository define el puerto de persistencia para recepciones de inventario.
type InventoryReceivedRepository interface {
	Create(ctx context.Context, received *entity.InventoryReceived) error
}
