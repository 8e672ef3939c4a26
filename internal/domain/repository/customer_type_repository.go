package repository

import (
	"context"

	"github.com/jhoicas/multistore-api/internal/domain/entity"
)

// CustomerTypeRepository define el puerto de persistencia para CustomerType.
type CustomerTypeRepository interface {
	// EnsureByName devuelve el tipo con ese nombre, creándolo si no existe.
	EnsureByName(ctx context.Context, name string) (*entity.CustomerType, error)
}
