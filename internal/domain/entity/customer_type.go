package entity

import "time"

// Tipos de cliente sembrados por defecto.
const (
	CustomerTypeMember   = "member"
	CustomerTypeCustomer = "customer"
)

// CustomerType clasificación de clientes (nombre único).
type CustomerType struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
