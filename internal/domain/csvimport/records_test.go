package csvimport_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/multistore-api/internal/domain/csvimport"
)

func row(line int, fields map[string]string) csvimport.Row {
	return csvimport.Row{Line: line, Fields: fields}
}

func validationMessage(t *testing.T, err error) string {
	t.Helper()
	var verr *csvimport.ValidationError
	require.True(t, errors.As(err, &verr), "se esperaba ValidationError, llegó %v", err)
	return verr.Message
}

func TestParseProductRecord_CaminoFeliz(t *testing.T) {
	rec, err := csvimport.ParseProductRecord(row(2, map[string]string{
		"product":          "Organic Milk",
		"category":         "Dairy;Organic",
		"show in store":    "checked",
		"unit":             "lbs",
		"price per unit":   "$3.99",
		"minimum to stock": "10",
		"source":           "Frankferd Farms",
	}))
	require.NoError(t, err)

	assert.Equal(t, "Organic Milk", rec.Name)
	assert.Equal(t, "Frankferd Farms", rec.SourceName)
	assert.Equal(t, []string{"Dairy", "Organic"}, rec.Categories)
	assert.Equal(t, "lbs", rec.UnitOfMeasurement)
	assert.Equal(t, "3.99", rec.PricePerUnit.String())
	assert.Equal(t, 10, rec.MinimumStock)
	assert.True(t, rec.IsOrganic, "la categoría Organic marca el producto como orgánico")
	assert.True(t, rec.ShowInStorefront)
}

func TestParseProductRecord_Defaults(t *testing.T) {
	rec, err := csvimport.ParseProductRecord(row(2, map[string]string{
		"name":          "Oats",
		"show in store": "",
		"is organic":    "Checked",
	}))
	require.NoError(t, err)

	assert.Equal(t, "units", rec.UnitOfMeasurement)
	assert.True(t, rec.PricePerUnit.IsZero())
	assert.Equal(t, 0, rec.MinimumStock)
	assert.True(t, rec.IsOrganic)
	assert.False(t, rec.ShowInStorefront)
	assert.Empty(t, rec.Categories)
}

func TestParseProductRecord_Errores(t *testing.T) {
	cases := []struct {
		name   string
		fields map[string]string
		msg    string
	}{
		{"sin nombre", map[string]string{"show in store": "checked"}, "Product name is required"},
		{"precio negativo", map[string]string{"product": "A", "price": "-1"}, "Invalid price per unit"},
		{"precio ilegible", map[string]string{"product": "A", "price": "free"}, "Invalid price per unit"},
		{"stock negativo", map[string]string{"product": "A", "min stock": "-3"}, "Invalid minimum stock"},
		{"stock ilegible", map[string]string{"product": "A", "minimum stock": "lots"}, "Invalid minimum stock"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := csvimport.ParseProductRecord(row(2, tc.fields))
			assert.Equal(t, tc.msg, validationMessage(t, err))
		})
	}
}

func TestParseCustomerRecord(t *testing.T) {
	rec, err := csvimport.ParseCustomerRecord(row(2, map[string]string{"name and surname": "Ada Lovelace", "e-mail": "ada@example.com"}))
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", rec.Name)
	assert.Equal(t, "ada@example.com", rec.Email)

	_, err = csvimport.ParseCustomerRecord(row(2, map[string]string{"email": "x@example.com"}))
	assert.Equal(t, "Customer name is required", validationMessage(t, err))

	_, err = csvimport.ParseCustomerRecord(row(2, map[string]string{"customer": "Ada"}))
	assert.Equal(t, "Email is required", validationMessage(t, err))

	_, err = csvimport.ParseCustomerRecord(row(2, map[string]string{"customer": "Ada", "email": "ada.example.com"}))
	assert.Equal(t, "Invalid email format", validationMessage(t, err))
}

func TestParseSourceRecord(t *testing.T) {
	rec, err := csvimport.ParseSourceRecord(row(2, map[string]string{"supplier": "Costco"}))
	require.NoError(t, err)
	assert.Equal(t, "Costco", rec.Name)

	_, err = csvimport.ParseSourceRecord(row(2, map[string]string{"vendor": "Costco"}))
	assert.Equal(t, "Source name is required", validationMessage(t, err))
}

func TestParseInventoryRecord(t *testing.T) {
	now := time.Date(2026, time.October, 16, 15, 4, 5, 0, time.UTC)

	rec, err := csvimport.ParseInventoryRecord(row(2, map[string]string{
		"item": "Oats", "qty": "4.7", "date received": "2024-01-15", "receipt number": "R-1",
	}), now)
	require.NoError(t, err)
	assert.Equal(t, "Oats", rec.ProductName)
	assert.Equal(t, 4, rec.Quantity, "la cantidad se trunca hacia abajo")
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), rec.ReceivedDate)
	assert.Equal(t, "R-1", rec.ReceiptURL)

	rec, err = csvimport.ParseInventoryRecord(row(2, map[string]string{"product": "Oats", "quantity": "2"}), now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC), rec.ReceivedDate, "sin fecha se usa hoy")

	_, err = csvimport.ParseInventoryRecord(row(2, map[string]string{"quantity": "2"}), now)
	assert.Equal(t, "Product name is required", validationMessage(t, err))

	_, err = csvimport.ParseInventoryRecord(row(2, map[string]string{"product": "Oats", "quantity": "0"}), now)
	assert.Equal(t, "Quantity must be a valid positive number", validationMessage(t, err))

	for _, qty := range []string{"1e30", "2147483648", "99999999999"} {
		_, err = csvimport.ParseInventoryRecord(row(2, map[string]string{"product": "Oats", "quantity": qty}), now)
		assert.Equal(t, "Quantity must be a valid positive number", validationMessage(t, err), qty)
	}

	rec, err = csvimport.ParseInventoryRecord(row(2, map[string]string{"product": "Oats", "quantity": "2147483647"}), now)
	require.NoError(t, err)
	assert.Equal(t, 2147483647, rec.Quantity)

	_, err = csvimport.ParseInventoryRecord(row(2, map[string]string{"product": "Oats", "quantity": "1", "date received": "soon"}), now)
	assert.Equal(t, "Invalid date received: soon", validationMessage(t, err))
}

func TestParseSaleLine(t *testing.T) {
	line, err := csvimport.ParseSaleLine(row(3, map[string]string{"product": "Oats", "quantity": "2", "total order price": "$10.00"}))
	require.NoError(t, err)
	assert.Equal(t, 3, line.Line)
	assert.Equal(t, 2.0, line.Quantity)
	assert.Equal(t, "10", line.LineTotal.String())

	line, err = csvimport.ParseSaleLine(row(4, map[string]string{"product": "", "quantity": "2", "total order price": "7.50"}))
	assert.Equal(t, "Product name is required", validationMessage(t, err))
	assert.Equal(t, "7.5", line.LineTotal.String(), "el monto se conserva para el total del pedido")

	_, err = csvimport.ParseSaleLine(row(5, map[string]string{"product": "Oats", "quantity": "-1", "total order price": "1"}))
	assert.Equal(t, "Quantity must be a valid positive number", validationMessage(t, err))

	for _, qty := range []string{"1e30", "2147483648"} {
		line, err = csvimport.ParseSaleLine(row(5, map[string]string{"product": "Oats", "quantity": qty, "total order price": "1"}))
		assert.Equal(t, "Quantity must be a valid positive number", validationMessage(t, err), qty)
		assert.Equal(t, "1", line.LineTotal.String())
	}

	_, err = csvimport.ParseSaleLine(row(6, map[string]string{"product": "Oats", "quantity": "1", "total order price": "n/a"}))
	assert.Equal(t, "Invalid total order price: n/a", validationMessage(t, err))
}

func TestParseSaleOrderHeader(t *testing.T) {
	now := time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC)

	h := csvimport.ParseSaleOrderHeader(row(2, map[string]string{
		"customer (from orders2)": "ada@example.com",
		"date (from orders2)":     "1/15/2024",
	}), now)
	assert.Equal(t, "ada@example.com", h.CustomerEmail)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), h.SaleDate)

	h = csvimport.ParseSaleOrderHeader(row(2, map[string]string{"date (from orders2)": "not a date"}), now)
	assert.Equal(t, now, h.SaleDate, "fecha inválida se reemplaza por el momento actual")
}
