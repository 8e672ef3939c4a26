package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/multistore-api/internal/domain"
	"github.com/jhoicas/multistore-api/internal/domain/entity"
	"github.com/jhoicas/multistore-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `
	p.id, p.store_id, p.source_id, p.name, p.sku, p.unit_of_measurement, p.price_per_unit,
	p.minimum_stock, p.is_organic, p.show_in_storefront, p.created_at, p.updated_at,
	COALESCE(array_agg(pc.category_id ORDER BY pc.category_id) FILTER (WHERE pc.category_id IS NOT NULL), '{}')`

// Create persiste el producto y sus enlaces a categorías. SKU repetido -> domain.ErrDuplicate.
// Llamar dentro de una tx para que producto y enlaces queden juntos.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO products (store_id, source_id, name, sku, unit_of_measurement, price_per_unit,
			minimum_stock, is_organic, show_in_storefront)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`,
		p.StoreID, p.SourceID, p.Name, p.SKU, p.UnitOfMeasurement, p.PricePerUnit,
		p.MinimumStock, p.IsOrganic, p.ShowInStorefront,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}

	for _, categoryID := range p.CategoryIDs {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO product_categories (product_id, category_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			p.ID, categoryID,
		); err != nil {
			return fmt.Errorf("link product category: %w", err)
		}
	}
	return nil
}

// ListByStore productos de una tienda, en orden de creación.
func (r *ProductRepo) ListByStore(ctx context.Context, storeID int64) ([]*entity.Product, error) {
	return r.list(ctx, `WHERE p.store_id = $1`, storeID)
}

// ListAll productos de todas las tiendas, en orden de creación.
func (r *ProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	return r.list(ctx, ``)
}

func (r *ProductRepo) list(ctx context.Context, where string, args ...any) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN product_categories pc ON pc.product_id = p.id
		` + where + `
		GROUP BY p.id
		ORDER BY p.id`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	list, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("scan products: %w", err)
	}
	return list, nil
}

func scanProduct(row pgx.CollectableRow) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.StoreID, &p.SourceID, &p.Name, &p.SKU, &p.UnitOfMeasurement, &p.PricePerUnit,
		&p.MinimumStock, &p.IsOrganic, &p.ShowInStorefront, &p.CreatedAt, &p.UpdatedAt,
		&p.CategoryIDs,
	)
	return &p, err
}
