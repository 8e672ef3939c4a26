package importer

import (
	"context"
	"errors"

	"github.com/jhoicas/multistore-api/internal/domain"
	"github.com/jhoicas/multistore-api/internal/domain/csvimport"
	"github.com/jhoicas/multistore-api/internal/domain/entity"
	"github.com/jhoicas/multistore-api/internal/domain/repository"
)

// skuAttempts reintentos ante colisión del SKU aleatorio.
const skuAttempts = 3

func (r *importRun) importProductRow(ctx context.Context, row csvimport.Row) error {
	rec, err := csvimport.ParseProductRecord(row)
	if err != nil {
		return err
	}

	idx, err := r.productsInStore(ctx)
	if err != nil {
		return err
	}
	if idx.find(rec.Name) != nil {
		return failf("Product \"%s\" already exists", rec.Name)
	}
	if err := r.requireStore(ctx); err != nil {
		return err
	}

	sourceID, err := r.findOrCreateSource(ctx, rec.SourceName)
	if err != nil {
		return err
	}
	categoryIDs, err := r.findOrCreateCategories(ctx, rec.Categories)
	if err != nil {
		return err
	}

	p := &entity.Product{
		StoreID:           r.storeID,
		SourceID:          sourceID,
		Name:              rec.Name,
		UnitOfMeasurement: rec.UnitOfMeasurement,
		PricePerUnit:      rec.PricePerUnit,
		MinimumStock:      rec.MinimumStock,
		IsOrganic:         rec.IsOrganic,
		ShowInStorefront:  rec.ShowInStorefront,
		CategoryIDs:       categoryIDs,
	}
	if err := r.createProduct(ctx, p); err != nil {
		return err
	}
	r.rememberProduct(p)
	return nil
}

// createProduct persiste el producto y sus categorías en una transacción, regenerando el SKU si colisiona.
func (r *importRun) createProduct(ctx context.Context, p *entity.Product) error {
	for attempt := 0; attempt < skuAttempts; attempt++ {
		p.SKU = csvimport.GenerateSKU(p.Name, r.uc.randIntN)
		err := r.uc.tx.Run(ctx, func(productRepo repository.ProductRepository, _ repository.CustomerRepository, _ repository.SaleRepository) error {
			return productRepo.Create(ctx, p)
		})
		if !errors.Is(err, domain.ErrDuplicate) {
			return err
		}
		r.log.Debug().Str("sku", p.SKU).Msg("SKU repetido; se genera otro")
	}
	return failf("Could not generate a unique SKU for product \"%s\"", p.Name)
}

// findOrCreateSource devuelve nil si la fila no indica proveedor.
func (r *importRun) findOrCreateSource(ctx context.Context, name string) (*int64, error) {
	if name == "" {
		return nil, nil
	}
	if id, ok := r.sources[name]; ok {
		return &id, nil
	}

	src, err := r.uc.repos.Sources.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = &entity.Source{Name: name}
		if err := r.uc.repos.Sources.Create(ctx, src); err != nil {
			if !errors.Is(err, domain.ErrDuplicate) {
				return nil, err
			}
			// creado en paralelo por otra importación
			if src, err = r.uc.repos.Sources.GetByName(ctx, name); err != nil || src == nil {
				return nil, errors.Join(domain.ErrNotFound, err)
			}
		}
	}
	r.sources[name] = src.ID
	id := src.ID
	return &id, nil
}

// findOrCreateCategories resuelve los nombres a IDs (sin repetidos, en el orden de la fila), creando los que falten.
func (r *importRun) findOrCreateCategories(ctx context.Context, names []string) ([]int64, error) {
	if len(names) == 0 {
		return nil, nil
	}
	existing, err := r.uc.repos.Categories.ListByNames(ctx, names)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]int64, len(existing))
	for _, c := range existing {
		byName[c.Name] = c.ID
	}

	ids := make([]int64, 0, len(names))
	seen := make(map[int64]bool, len(names))
	for _, name := range names {
		id, ok := byName[name]
		if !ok {
			c := &entity.Category{Name: name}
			if err := r.uc.repos.Categories.Create(ctx, c); err != nil {
				return nil, err
			}
			id = c.ID
			byName[name] = id
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids, nil
}
