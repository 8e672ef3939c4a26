package importer

import (
	"context"

	"github.com/jhoicas/multistore-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Cada fila (o pedido) importado se persiste en una sola unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// SheetReader lee la primera hoja de un libro XLSX como filas de celdas.
type SheetReader interface {
	ReadFirstSheet(data []byte) ([][]string, error)
}

// Repositories puertos de persistencia fuera de transacción que usa la importación.
type Repositories struct {
	Stores     repository.StoreRepository
	Customers  repository.CustomerRepository
	Products   repository.ProductRepository
	Sources    repository.SourceRepository
	Categories repository.CategoryRepository
	Inventory  repository.InventoryReceivedRepository
}
