package entity

import "time"

// InventoryReceived registra una recepción de mercancía para un producto.
type InventoryReceived struct {
	ID           int64
	ProductID    int64
	Quantity     int
	ReceivedDate time.Time
	ReceiptURL   string // vacío si no hay referencia de recibo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
