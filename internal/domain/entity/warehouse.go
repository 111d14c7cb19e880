package entity

import "time"

// Warehouse representa una bodega física identificada por un código corto.
type Warehouse struct {
	ID        string
	Code      string // código único, ej. "WH"
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location representa una ubicación dentro de una bodega (datos de referencia).
// Las operaciones referencian ubicaciones por código sin validación de existencia.
type Location struct {
	ID            string
	Code          string // código único, ej. "STOCK", "CUSTOMER"
	Name          string
	WarehouseCode string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
