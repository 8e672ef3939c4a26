package entity

import "time"

// Category representa una categoría de productos (nombre único).
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
