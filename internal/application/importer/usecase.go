package importer

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/multistore-api/internal/application/dto"
	"github.com/jhoicas/multistore-api/internal/domain/csvimport"
	"github.com/jhoicas/multistore-api/pkg/logger"
)

// ErrUnreadableFile el archivo no se pudo leer como hoja de cálculo.
var ErrUnreadableFile = errors.New("file could not be read as a spreadsheet")

// IsBadInput indica si el error se debe al contenido del archivo (HTTP 400) y no a un fallo interno.
func IsBadInput(err error) bool {
	return errors.Is(err, csvimport.ErrNotEnoughRows) || errors.Is(err, ErrUnreadableFile)
}

// Options comportamiento configurable de la importación.
type Options struct {
	// SalesStoreScoped limita la búsqueda de productos de ventas a la tienda destino.
	SalesStoreScoped bool
}

// Input archivo subido y tienda destino.
type Input struct {
	FileName string
	Data     []byte
	StoreID  int64
}

// ImportUseCase importa un archivo CSV/XLSX fila a fila. Un fallo en una fila (o pedido) se
// registra en el resultado y no detiene el resto; solo errores estructurales abortan.
type ImportUseCase struct {
	repos    Repositories
	tx       TxRunner
	sheets   SheetReader
	log      *logger.Logger
	opts     Options
	now      func() time.Time
	randIntN func(n int) int
}

// NewImportUseCase construye el caso de uso. sheets puede ser nil si no se aceptan XLSX.
func NewImportUseCase(repos Repositories, tx TxRunner, sheets SheetReader, log *logger.Logger, opts Options) *ImportUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ImportUseCase{
		repos:    repos,
		tx:       tx,
		sheets:   sheets,
		log:      log,
		opts:     opts,
		now:      time.Now,
		randIntN: rand.Intn,
	}
}

// Import lee el archivo, detecta su tipo y ejecuta el importador correspondiente.
func (uc *ImportUseCase) Import(ctx context.Context, in Input) (*dto.ImportResult, error) {
	table, err := uc.readTable(in)
	if err != nil {
		return nil, err
	}
	return uc.ImportTable(ctx, table, in.StoreID)
}

// ImportTable importa una tabla ya construida. Un tipo no reconocido devuelve un resultado vacío.
func (uc *ImportUseCase) ImportTable(ctx context.Context, table *csvimport.Table, storeID int64) (*dto.ImportResult, error) {
	kind := csvimport.DetectKind(table.Headers)
	r := uc.newRun(storeID, kind)
	started := time.Now()

	r.log.Info().Int("rows", len(table.Rows)).Msg("importación iniciada")

	var err error
	switch kind {
	case csvimport.KindSales:
		err = r.importSales(ctx, table.Rows)
	case csvimport.KindInventory:
		err = r.eachRow(ctx, table.Rows, r.importInventoryRow)
	case csvimport.KindProducts:
		err = r.eachRow(ctx, table.Rows, r.importProductRow)
	case csvimport.KindCustomers:
		err = r.eachRow(ctx, table.Rows, r.importCustomerRow)
	case csvimport.KindSources:
		err = r.eachRow(ctx, table.Rows, r.importSourceRow)
	default:
		r.log.Warn().Strs("headers", table.Headers).Msg("tipo de archivo no reconocido; no se importa nada")
	}
	if err != nil {
		r.log.Error().Err(err).Int("success", r.result.Success).Int("failed", r.result.Failed).Msg("importación interrumpida")
		return nil, err
	}

	r.log.Info().
		Int("success", r.result.Success).
		Int("failed", r.result.Failed).
		Dur("elapsed", time.Since(started)).
		Msg("importación finalizada")
	return r.result, nil
}

func (uc *ImportUseCase) readTable(in Input) (*csvimport.Table, error) {
	if !isSpreadsheet(in.FileName) {
		return csvimport.ParseText(csvimport.DecodeUpload(in.Data))
	}
	if uc.sheets == nil {
		return nil, fmt.Errorf("%w: xlsx no soportado", ErrUnreadableFile)
	}
	records, err := uc.sheets.ReadFirstSheet(in.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	return csvimport.FromRecords(records)
}

func isSpreadsheet(fileName string) bool {
	return strings.EqualFold(filepath.Ext(fileName), ".xlsx")
}

func (uc *ImportUseCase) newRun(storeID int64, kind csvimport.Kind) *importRun {
	log := uc.log.Child(uc.log.With().
		Str("import_id", uuid.NewString()).
		Int64("store_id", storeID).
		Str("type", string(kind)))
	return &importRun{
		uc:      uc,
		storeID: storeID,
		log:     log,
		result:  dto.NewImportResult(string(kind)),
		sources: make(map[string]int64),
	}
}
