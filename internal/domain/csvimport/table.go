// Package csvimport contiene las piezas puras del motor de importación masiva:
// lectura de líneas CSV, construcción de la tabla, detección del tipo de archivo,
// normalización de montos/cantidades/fechas y conversión de filas a registros tipados.
// No depende de la persistencia.
package csvimport

import (
	"errors"
	"strings"
)

// FirstDataRow es el número de fila (estilo hoja de cálculo) de la primera fila de datos.
const FirstDataRow = 2

// ErrNotEnoughRows el archivo no trae encabezado y al menos una fila de datos (incluye el archivo vacío).
var ErrNotEnoughRows = errors.New("CSV must have headers and at least one data row")

// Row fila cruda: encabezado (minúsculas, sin espacios extremos) -> valor recortado.
// Line es la posición física de la fila, 1 = encabezado.
type Row struct {
	Line   int
	Fields map[string]string
}

// Get devuelve el primer valor no vacío entre los alias, en orden.
func (r Row) Get(aliases ...string) string {
	for _, a := range aliases {
		if v := r.Fields[a]; v != "" {
			return v
		}
	}
	return ""
}

// Has indica si la fila trae alguno de los alias como columna (aunque esté vacía).
func (r Row) Has(aliases ...string) bool {
	for _, a := range aliases {
		if _, ok := r.Fields[a]; ok {
			return true
		}
	}
	return false
}

// Table encabezados normalizados y filas de datos en orden de aparición.
type Table struct {
	Headers []string
	Rows    []Row
}

// ParseText construye la tabla a partir del texto completo de un CSV, línea por línea.
// Las líneas en blanco entre filas de datos se omiten sin alterar la numeración física.
func ParseText(text string) (*Table, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrNotEnoughRows
	}
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return nil, ErrNotEnoughRows
	}
	records := make([][]string, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		records[i] = ParseLine(strings.TrimSuffix(line, "\r"))
	}
	return FromRecords(records)
}

// FromRecords construye la tabla a partir de registros ya separados en celdas (CSV o XLSX).
// records[0] es el encabezado; registros nil o con todas las celdas vacías se omiten.
func FromRecords(records [][]string) (*Table, error) {
	if len(records) < 2 {
		return nil, ErrNotEnoughRows
	}
	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = normalizeHeader(h)
	}

	t := &Table{Headers: headers}
	for i := 1; i < len(records); i++ {
		values := records[i]
		if isBlank(values) {
			continue
		}
		fields := make(map[string]string, len(headers))
		for j, h := range headers {
			v := ""
			if j < len(values) {
				v = strings.TrimSpace(values[j])
			}
			fields[h] = v
		}
		t.Rows = append(t.Rows, Row{Line: i + 1, Fields: fields})
	}
	if len(t.Rows) == 0 {
		return nil, ErrNotEnoughRows
	}
	return t, nil
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
}

func isBlank(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
