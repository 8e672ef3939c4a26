package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultUnitOfMeasurement unidad usada cuando la fila no indica una.
const DefaultUnitOfMeasurement = "units"

// Product representa un producto del catálogo de una tienda.
type Product struct {
	ID                int64
	StoreID           int64
	SourceID          *int64 // proveedor opcional
	Name              string
	SKU               string
	UnitOfMeasurement string
	PricePerUnit      decimal.Decimal
	MinimumStock      int
	IsOrganic         bool
	ShowInStorefront  bool
	CategoryIDs       []int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
