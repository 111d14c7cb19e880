package entity

import (
	"fmt"
	"time"
)

// Tipos de operación de stock.
const (
	KindReceipt  = "receipt"  // entrada de mercancía
	KindDelivery = "delivery" // salida hacia cliente
)

// Estados del ciclo de vida de una operación.
// Done y Canceled son terminales; Waiting solo aplica a entregas sin stock suficiente.
const (
	StatusDraft    = "Draft"
	StatusWaiting  = "Waiting"
	StatusReady    = "Ready"
	StatusDone     = "Done"
	StatusCanceled = "Canceled"
)

// Acciones aceptadas por el motor de operaciones.
const (
	ActionTodo     = "todo"
	ActionValidate = "validate"
	ActionCancel   = "cancel"
)

// Operation representa una recepción o una entrega: referencia secuencial por
// tipo, ubicaciones origen/destino y líneas ordenadas de producto+cantidad.
type Operation struct {
	ID           string
	Kind         string // KindReceipt | KindDelivery
	Reference    string // única por tipo, ej. WH/IN/0001
	FromLocation string
	ToLocation   string
	Contact      string
	ScheduleDate time.Time
	Status       string
	Responsible  string
	Lines        []OperationLine
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OperationLine una línea de operación: SKU y cantidad solicitada (>= 0).
type OperationLine struct {
	ProductSKU string
	Quantity   int64
}

// IsTerminal indica si el estado no admite más transiciones.
func IsTerminal(status string) bool {
	return status == StatusDone || status == StatusCanceled
}

// ValidKind indica si kind es un tipo de operación conocido.
func ValidKind(kind string) bool {
	return kind == KindReceipt || kind == KindDelivery
}

// RefPrefix devuelve el prefijo de referencia del tipo de operación.
func RefPrefix(kind string) string {
	if kind == KindDelivery {
		return "WH/OUT"
	}
	return "WH/IN"
}

// FormatReference arma la referencia legible a partir del consecutivo, ej. WH/IN/0001.
func FormatReference(kind string, seq int64) string {
	return fmt.Sprintf("%s/%04d", RefPrefix(kind), seq)
}
