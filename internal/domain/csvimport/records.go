package csvimport

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/multistore-api/internal/domain/entity"
)

// Alias de columnas aceptados por tipo de registro, en orden de preferencia.
var (
	productNameCols     = []string{"product", "product name", "name"}
	productSourceCols   = []string{"source", "source name"}
	productCategoryCols = []string{"category", "categories"}
	productUnitCols     = []string{"unit", "uom"}
	productPriceCols    = []string{"price per unit", "price"}
	productMinStockCols = []string{"minimum to stock", "minimum stock", "min stock"}
	productOrganicCols  = []string{"is organic", "organic"}
	productShowCols     = []string{"show in store", "show in storefront"}

	customerNameCols  = []string{"name and surname", "customer name", "name", "customer"}
	customerEmailCols = []string{"email", "e-mail"}

	sourceNameCols = []string{"source name", "name", "source", "supplier"}

	inventoryProductCols  = []string{"product", "product name", "name", "item"}
	inventoryQuantityCols = []string{"quantity", "quantity received", "qty", "amount"}
	inventoryDateCols     = []string{"date received", "received date", "date"}
	inventoryReceiptCols  = []string{"receipt", "receipt url", "receipt info", "receipt number"}
)

// Columnas de ventas (exportación de pedidos con una fila por artículo).
const (
	SaleOrderCol      = "orders2"
	SaleCustomerCol   = "customer (from orders2)"
	SaleDateCol       = "date (from orders2)"
	SaleProductCol    = "product"
	SaleQuantityCol   = "quantity"
	SaleLineTotalCol  = "total order price"
	unknownOrderGroup = "unknown"
)

// ValidationError fila rechazada antes de tocar la persistencia. Message es legible para el usuario.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ProductRecord fila de productos validada.
type ProductRecord struct {
	Name              string
	SourceName        string
	Categories        []string
	UnitOfMeasurement string
	PricePerUnit      decimal.Decimal
	MinimumStock      int
	IsOrganic         bool
	ShowInStorefront  bool
}

// ParseProductRecord valida y tipa una fila de productos.
func ParseProductRecord(row Row) (*ProductRecord, error) {
	name := row.Get(productNameCols...)
	categoryList := row.Get(productCategoryCols...)

	rec := &ProductRecord{
		Name:              name,
		SourceName:        strings.TrimSpace(row.Get(productSourceCols...)),
		Categories:        SplitCategories(categoryList),
		UnitOfMeasurement: row.Get(productUnitCols...),
		IsOrganic: IsChecked(row.Get(productOrganicCols...)) ||
			strings.Contains(strings.ToLower(categoryList), "organic"),
		ShowInStorefront: IsChecked(row.Get(productShowCols...)),
	}
	if rec.UnitOfMeasurement == "" {
		rec.UnitOfMeasurement = entity.DefaultUnitOfMeasurement
	}

	if name == "" {
		return nil, invalid("Product name is required")
	}
	price, err := ParseAmount(row.Get(productPriceCols...))
	if err != nil || price.IsNegative() {
		return nil, invalid("Invalid price per unit")
	}
	rec.PricePerUnit = price

	minStock, err := ParseInteger(row.Get(productMinStockCols...))
	if err != nil || minStock < 0 {
		return nil, invalid("Invalid minimum stock")
	}
	rec.MinimumStock = minStock
	return rec, nil
}

// SplitCategories separa una lista "A;B; C" descartando vacíos.
func SplitCategories(s string) []string {
	var out []string
	for _, c := range strings.Split(s, ";") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// CustomerRecord fila de clientes validada.
type CustomerRecord struct {
	Name  string
	Email string
}

// ParseCustomerRecord valida nombre y email. La validación de email es deliberadamente mínima (contiene "@").
func ParseCustomerRecord(row Row) (*CustomerRecord, error) {
	rec := &CustomerRecord{
		Name:  row.Get(customerNameCols...),
		Email: row.Get(customerEmailCols...),
	}
	if rec.Name == "" {
		return nil, invalid("Customer name is required")
	}
	if rec.Email == "" {
		return nil, invalid("Email is required")
	}
	if !strings.Contains(rec.Email, "@") {
		return nil, invalid("Invalid email format")
	}
	return rec, nil
}

// SourceRecord fila de proveedores validada.
type SourceRecord struct {
	Name string
}

// ParseSourceRecord valida una fila de proveedores.
func ParseSourceRecord(row Row) (*SourceRecord, error) {
	name := row.Get(sourceNameCols...)
	if name == "" {
		return nil, invalid("Source name is required")
	}
	return &SourceRecord{Name: name}, nil
}

// validQuantity cantidad positiva que cabe en una columna INTEGER.
func validQuantity(qty float64) bool {
	return qty > 0 && qty <= math.MaxInt32
}

// InventoryRecord fila de recepción de inventario validada.
type InventoryRecord struct {
	ProductName  string
	Quantity     int // piso de la cantidad leída
	ReceivedDate time.Time
	ReceiptURL   string
}

// ParseInventoryRecord valida una fila de inventario. Sin fecha se usa el día de now.
func ParseInventoryRecord(row Row, now time.Time) (*InventoryRecord, error) {
	productName := row.Get(inventoryProductCols...)
	if productName == "" {
		return nil, invalid("Product name is required")
	}
	qty, err := ParseQuantity(row.Get(inventoryQuantityCols...))
	if err != nil || !validQuantity(qty) {
		return nil, invalid("Quantity must be a valid positive number")
	}

	received := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if raw := row.Get(inventoryDateCols...); raw != "" {
		received, err = ParseDate(raw)
		if err != nil {
			return nil, invalid("Invalid date received: %s", raw)
		}
	}

	return &InventoryRecord{
		ProductName:  productName,
		Quantity:     int(qty),
		ReceivedDate: received,
		ReceiptURL:   row.Get(inventoryReceiptCols...),
	}, nil
}

// SaleLine artículo de un pedido. LineTotal es el total de la línea (no unitario).
type SaleLine struct {
	Line        int
	ProductName string
	Quantity    float64
	LineTotal   decimal.Decimal
}

// ParseSaleLine tipa una fila de ventas. LineTotal se conserva aunque la línea sea inválida
// por producto o cantidad: el total del pedido suma todas las líneas con monto legible.
func ParseSaleLine(row Row) (SaleLine, error) {
	line := SaleLine{Line: row.Line, ProductName: row.Get(SaleProductCol)}

	total, err := ParseAmount(row.Get(SaleLineTotalCol))
	if err != nil {
		return line, invalid("Invalid total order price: %s", row.Get(SaleLineTotalCol))
	}
	line.LineTotal = total

	if line.ProductName == "" {
		return line, invalid("Product name is required")
	}
	qty, err := ParseQuantity(row.Get(SaleQuantityCol))
	if err != nil || !validQuantity(qty) {
		return line, invalid("Quantity must be a valid positive number")
	}
	line.Quantity = qty
	return line, nil
}

// SaleOrderHeader datos de cabecera de un pedido, leídos de su primera fila.
type SaleOrderHeader struct {
	CustomerEmail string
	SaleDate      time.Time
}

// ParseSaleOrderHeader lee email y fecha del pedido. Una fecha ausente o inválida se reemplaza por now.
func ParseSaleOrderHeader(first Row, now time.Time) SaleOrderHeader {
	h := SaleOrderHeader{CustomerEmail: first.Get(SaleCustomerCol), SaleDate: now}
	if raw := first.Get(SaleDateCol); raw != "" {
		if d, err := ParseDate(raw); err == nil {
			h.SaleDate = d
		}
	}
	return h
}
