package repository

import (
	"context"

	"github.com/jhoicas/multistore-api/internal/domain/entity"
)

// StoreRepository define el puerto de persistencia para Store.
type StoreRepository interface {
	// GetByID devuelve nil, nil si la tienda no existe.
	GetByID(ctx context.Context, id int64) (*entity.Store, error)
	Create(ctx context.Context, store *entity.Store) error
	Count(ctx context.Context) (int, error)
}
