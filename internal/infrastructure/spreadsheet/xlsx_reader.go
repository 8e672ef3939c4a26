// Package spreadsheet lee libros XLSX subidos a la importación masiva.
package spreadsheet

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/multistore-api/internal/application/importer"
)

var _ importer.SheetReader = (*XLSXReader)(nil)

// XLSXReader adaptador de importer.SheetReader sobre excelize.
type XLSXReader struct{}

// NewXLSXReader construye el lector.
func NewXLSXReader() *XLSXReader {
	return &XLSXReader{}
}

// ReadFirstSheet devuelve las filas de la primera hoja. Las filas vacías intermedias se conservan
// (vacías) para no alterar la numeración de filas.
func (XLSXReader) ReadFirstSheet(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("abrir xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("el libro no tiene hojas")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer filas de %q: %w", sheets[0], err)
	}
	return rows, nil
}
