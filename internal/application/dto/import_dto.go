package dto

// ImportResult resumen de una importación masiva.
type ImportResult struct {
	Success int        `json:"success"`
	Failed  int        `json:"failed"`
	Errors  []RowError `json:"errors"`
	Type    string     `json:"type"`
}

// RowError fallo de una fila (o del grupo que empieza en esa fila). Row usa numeración de hoja de cálculo: 2 = primera fila de datos.
type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error,omitempty"`
}

// NewImportResult resultado vacío con Errors inicializado (se serializa como [] y no como null).
func NewImportResult(kind string) *ImportResult {
	return &ImportResult{Errors: []RowError{}, Type: kind}
}

// AddSuccess suma n filas importadas.
func (r *ImportResult) AddSuccess(n int) {
	r.Success += n
}

// AddFailure suma n filas fallidas y registra un único error en row.
func (r *ImportResult) AddFailure(n, row int, msg string) {
	r.Failed += n
	r.Errors = append(r.Errors, RowError{Row: row, Error: msg})
}
