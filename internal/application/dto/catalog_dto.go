package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductResponse representación HTTP de un producto. ID es el identificador
// interno serializado como string; nunca participa en la lógica del motor.
type ProductResponse struct {
	ID        string          `json:"id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Cost      decimal.Decimal `json:"cost"`
	OnHand    int64           `json:"on_hand"`
	FreeToUse int64           `json:"free_to_use"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// UpdateProductRequest body para PATCH /products/{sku}. Campos nil no se tocan.
type UpdateProductRequest struct {
	Cost      *decimal.Decimal `json:"cost,omitempty"`
	OnHand    *int64           `json:"on_hand,omitempty"`
	FreeToUse *int64           `json:"free_to_use,omitempty"`
}

// WarehouseResponse representación HTTP de una bodega.
type WarehouseResponse struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// LocationResponse representación HTTP de una ubicación.
type LocationResponse struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	WarehouseCode string `json:"warehouse_code"`
}
