package repository

import (
	"context"

	"github.com/jhoicas/multistore-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create persiste el producto y sus enlaces a CategoryIDs.
	Create(ctx context.Context, product *entity.Product) error
	ListByStore(ctx context.Context, storeID int64) ([]*entity.Product, error)
	ListAll(ctx context.Context) ([]*entity.Product, error)
}
