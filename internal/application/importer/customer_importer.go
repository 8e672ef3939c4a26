package importer

import (
	"context"
	"errors"

	"github.com/jhoicas/multistore-api/internal/domain"
	"github.com/jhoicas/multistore-api/internal/domain/csvimport"
	"github.com/jhoicas/multistore-api/internal/domain/entity"
	"github.com/jhoicas/multistore-api/internal/domain/repository"
)

func (r *importRun) importCustomerRow(ctx context.Context, row csvimport.Row) error {
	rec, err := csvimport.ParseCustomerRecord(row)
	if err != nil {
		return err
	}
	if err := r.requireStore(ctx); err != nil {
		return err
	}

	c := &entity.Customer{Name: rec.Name, Email: rec.Email}
	err = r.uc.tx.Run(ctx, func(_ repository.ProductRepository, customerRepo repository.CustomerRepository, _ repository.SaleRepository) error {
		if err := customerRepo.Create(ctx, c); err != nil {
			return err
		}
		return customerRepo.AddToStore(ctx, c.ID, r.storeID)
	})
	if errors.Is(err, domain.ErrDuplicate) {
		return failf("Email already exists: %s", rec.Email)
	}
	return err
}
