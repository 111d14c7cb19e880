package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo.
// OnHand es la cantidad física total; FreeToUse la cantidad no comprometida en
// salidas pendientes (FreeToUse <= OnHand por intención, no se fuerza en DB).
// Ambas cantidades se mutan únicamente desde el motor de operaciones al validar
// una recepción o una entrega.
type Product struct {
	ID        string
	SKU       string // código único, ej. DESK001
	Name      string
	Cost      decimal.Decimal
	OnHand    int64
	FreeToUse int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
