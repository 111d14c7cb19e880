package entity

import "time"

// Dirección de un movimiento de stock.
const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

// Move es el registro inmutable de un cambio de cantidad producido al validar
// una operación: se crea exactamente una vez por línea y nunca se actualiza.
// Sirve como historial de auditoría, no como insumo de cálculo.
type Move struct {
	ID           string
	Reference    string // referencia de la operación de origen (desnormalizada)
	Date         time.Time
	Contact      string
	FromLocation string
	ToLocation   string
	ProductSKU   string
	Quantity     int64
	Direction    string // DirectionIn | DirectionOut
	Status       string // siempre StatusDone en la práctica
	CreatedAt    time.Time
}
