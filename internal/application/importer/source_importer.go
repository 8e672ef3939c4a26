package importer

import (
	"context"
	"errors"

	"github.com/jhoicas/multistore-api/internal/domain"
	"github.com/jhoicas/multistore-api/internal/domain/csvimport"
	"github.com/jhoicas/multistore-api/internal/domain/entity"
)

func (r *importRun) importSourceRow(ctx context.Context, row csvimport.Row) error {
	rec, err := csvimport.ParseSourceRecord(row)
	if err != nil {
		return err
	}
	src := &entity.Source{Name: rec.Name}
	if err := r.uc.repos.Sources.Create(ctx, src); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return failf("Source already exists: %s", rec.Name)
		}
		return err
	}
	r.sources[src.Name] = src.ID
	return nil
}
