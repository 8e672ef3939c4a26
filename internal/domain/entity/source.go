package entity

import "time"

// Source representa un proveedor (nombre único).
type Source struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
