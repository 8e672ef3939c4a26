package repository

import (
	"context"

	"github.com/jhoicas/multistore-api/internal/domain/entity"
)

// SourceRepository define el puerto de persistencia para Source (proveedores).
type SourceRepository interface {
	// Create retorna domain.ErrDuplicate si el nombre ya existe.
	Create(ctx context.Context, source *entity.Source) error
	// GetByName busca por nombre exacto; nil, nil si no existe.
	GetByName(ctx context.Context, name string) (*entity.Source, error)
}
