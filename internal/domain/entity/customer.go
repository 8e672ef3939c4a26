package entity

import "time"

// UnaccountedCustomerName es el nombre del cliente comodín que recibe las ventas
// históricas cuyo email no corresponde a ningún cliente registrado.
const UnaccountedCustomerName = "Unaccounted"

// UnaccountedCustomerEmail es el email centinela del cliente comodín cuando la venta no trae email.
const UnaccountedCustomerEmail = "unaccounted@example.com"

// Customer representa un cliente. Email es único (comparación exacta, sensible a mayúsculas).
type Customer struct {
	ID        int64
	Name      string
	Email     string
	IsAdmin   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CustomerStore asociación cliente-tienda.
type CustomerStore struct {
	CustomerID int64
	StoreID    int64
	CreatedAt  time.Time
}
