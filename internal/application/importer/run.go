package importer

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/multistore-api/internal/application/dto"
	"github.com/jhoicas/multistore-api/internal/domain/csvimport"
	"github.com/jhoicas/multistore-api/internal/domain/entity"
	"github.com/jhoicas/multistore-api/pkg/logger"
)

// rowFailure fallo de negocio esperado de una fila; Error() es el mensaje que ve el usuario.
type rowFailure struct {
	msg string
}

func (f *rowFailure) Error() string { return f.msg }

func failf(format string, args ...any) error {
	return &rowFailure{msg: fmt.Sprintf(format, args...)}
}

func isExpectedFailure(err error) bool {
	var rf *rowFailure
	var ve *csvimport.ValidationError
	return errors.As(err, &rf) || errors.As(err, &ve)
}

// importRun estado de una importación: resultado acumulado y cachés válidas solo durante la corrida.
type importRun struct {
	uc      *ImportUseCase
	storeID int64
	log     *logger.Logger
	result  *dto.ImportResult

	store        *entity.Store
	storeChecked bool

	storeProducts *productIndex
	allProducts   *productIndex

	sources map[string]int64 // nombre -> id
}

// eachRow ejecuta fn por fila. Solo la cancelación del contexto detiene el recorrido.
func (r *importRun) eachRow(ctx context.Context, rows []csvimport.Row, fn func(context.Context, csvimport.Row) error) error {
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("import aborted after %d of %d rows: %w", i, len(rows), err)
		}
		if err := r.guard(row.Line, func() error { return fn(ctx, row) }); err != nil {
			r.fail(row.Line, 1, err)
			continue
		}
		r.result.AddSuccess(1)
	}
	return nil
}

// guard convierte un panic dentro de la fila en un error de esa fila.
func (r *importRun) guard(line int, fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error().Int("row", line).Interface("panic", rec).Msg("panic procesando fila")
			err = fmt.Errorf("unexpected error processing row: %v", rec)
		}
	}()
	return fn()
}

// fail registra n filas fallidas con el mensaje de err, reportado en line.
func (r *importRun) fail(line, n int, err error) {
	if isExpectedFailure(err) {
		r.log.Debug().Int("row", line).Str("reason", err.Error()).Msg("fila rechazada")
	} else {
		r.log.Error().Err(err).Int("row", line).Msg("error importando fila")
	}
	r.result.AddFailure(n, line, err.Error())
}

func (r *importRun) requireStore(ctx context.Context) error {
	if !r.storeChecked {
		store, err := r.uc.repos.Stores.GetByID(ctx, r.storeID)
		if err != nil {
			return err
		}
		r.store = store
		r.storeChecked = true
	}
	if r.store == nil {
		return failf("Store with ID %d not found", r.storeID)
	}
	return nil
}

// productsInStore índice de productos de la tienda destino, cargado una vez por corrida.
func (r *importRun) productsInStore(ctx context.Context) (*productIndex, error) {
	if r.storeProducts == nil {
		list, err := r.uc.repos.Products.ListByStore(ctx, r.storeID)
		if err != nil {
			return nil, err
		}
		r.storeProducts = newProductIndex(list)
	}
	return r.storeProducts, nil
}

// productsEverywhere índice de productos de todas las tiendas, cargado una vez por corrida.
func (r *importRun) productsEverywhere(ctx context.Context) (*productIndex, error) {
	if r.allProducts == nil {
		list, err := r.uc.repos.Products.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		r.allProducts = newProductIndex(list)
	}
	return r.allProducts, nil
}

func (r *importRun) rememberProduct(p *entity.Product) {
	if r.storeProducts != nil {
		r.storeProducts.add(p)
	}
	if r.allProducts != nil {
		r.allProducts.add(p)
	}
}
