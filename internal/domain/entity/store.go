package entity

import "time"

// Store representa una tienda; productos y clientes se asocian a una o varias tiendas.
type Store struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
