package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale cabecera de una venta. Items se crean junto con la cabecera en la misma transacción.
type Sale struct {
	ID            int64
	CustomerID    int64
	SaleDate      time.Time
	TotalCost     decimal.Decimal
	TotalPrice    decimal.Decimal
	MarkupPercent decimal.Decimal // fracción: 0.05 = 5%
	Items         []SaleItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SaleItem línea de una venta. CostPrice y SalePrice son unitarios.
type SaleItem struct {
	ID        int64
	SaleID    int64
	ProductID int64
	Quantity  int
	CostPrice decimal.Decimal
	SalePrice decimal.Decimal
}
