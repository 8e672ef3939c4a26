package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/multistore-api/internal/domain"
	"github.com/jhoicas/multistore-api/internal/domain/entity"
	"github.com/jhoicas/multistore-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre PostgreSQL (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, name, email, is_admin, created_at, updated_at`

// Create persiste un cliente. Email repetido -> domain.ErrDuplicate.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO customers (name, email, is_admin)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		c.Name, c.Email, c.IsAdmin,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByEmail busca por email exacto.
func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by email: %w", err)
	}
	return c, nil
}

// UpsertByEmail devuelve el cliente existente o lo crea con name. No modifica clientes existentes.
func (r *CustomerRepo) UpsertByEmail(ctx context.Context, email, name string) (*entity.Customer, error) {
	// DO UPDATE sin cambios reales para que RETURNING devuelva la fila existente.
	c, err := scanCustomer(r.q.QueryRow(ctx, `
		INSERT INTO customers (name, email)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING `+customerColumns,
		name, email,
	))
	if err != nil {
		return nil, fmt.Errorf("upsert customer: %w", err)
	}
	return c, nil
}

// AddToStore asocia el cliente a la tienda; la asociación repetida se ignora.
func (r *CustomerRepo) AddToStore(ctx context.Context, customerID, storeID int64) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO customer_stores (customer_id, store_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		customerID, storeID,
	)
	if err != nil {
		return fmt.Errorf("add customer to store: %w", err)
	}
	return nil
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.IsAdmin, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
