package repository

import (
	"context"

	"github.com/jhoicas/multistore-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	// ListByNames devuelve las categorías cuyo nombre coincide exactamente con alguno de names.
	ListByNames(ctx context.Context, names []string) ([]*entity.Category, error)
}
