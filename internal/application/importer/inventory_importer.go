package importer

import (
	"context"

	"github.com/jhoicas/multistore-api/internal/domain/csvimport"
	"github.com/jhoicas/multistore-api/internal/domain/entity"
)

func (r *importRun) importInventoryRow(ctx context.Context, row csvimport.Row) error {
	rec, err := csvimport.ParseInventoryRecord(row, r.uc.now())
	if err != nil {
		return err
	}
	idx, err := r.productsInStore(ctx)
	if err != nil {
		return err
	}
	p := idx.find(rec.ProductName)
	if p == nil {
		return failf("Product \"%s\" not found in this store", rec.ProductName)
	}
	return r.uc.repos.Inventory.Create(ctx, &entity.InventoryReceived{
		ProductID:    p.ID,
		Quantity:     rec.Quantity,
		ReceivedDate: rec.ReceivedDate,
		ReceiptURL:   rec.ReceiptURL,
	})
}
