// Package migrations contiene el esquema SQL versionado (formato goose), embebido en el binario.
package migrations

import "embed"

// FS archivos NNNNN_*.sql aplicados por cmd/migrate.
//
//go:embed *.sql
var FS embed.FS
