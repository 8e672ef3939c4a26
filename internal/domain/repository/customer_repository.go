package repository

import (
	"context"

	"github.com/jhoicas/multistore-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	// Create retorna domain.ErrDuplicate si el email ya existe.
	Create(ctx context.Context, customer *entity.Customer) error
	// GetByEmail busca por coincidencia exacta; nil, nil si no existe.
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	// UpsertByEmail devuelve el cliente con ese email, creándolo con name si no existe.
	UpsertByEmail(ctx context.Context, email, name string) (*entity.Customer, error)
	AddToStore(ctx context.Context, customerID, storeID int64) error
}
