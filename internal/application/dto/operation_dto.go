package dto

import "time"

// OperationLineDTO una línea de operación.
type OperationLineDTO struct {
	ProductSKU string `json:"product_sku"`
	Quantity   int64  `json:"quantity"`
}

// CreateOperationRequest body para POST /receipts y POST /deliveries.
// Las ubicaciones omitidas se completan con los valores por defecto del tipo.
type CreateOperationRequest struct {
	FromLocation string             `json:"from_location,omitempty"`
	ToLocation   string             `json:"to_location,omitempty"`
	Contact      string             `json:"contact,omitempty"`
	ScheduleDate *time.Time         `json:"schedule_date,omitempty"`
	Lines        []OperationLineDTO `json:"lines"`
}

// OperationResponse representación HTTP de una recepción o entrega.
type OperationResponse struct {
	ID           string             `json:"id"`
	Reference    string             `json:"reference"`
	FromLocation string             `json:"from_location,omitempty"`
	ToLocation   string             `json:"to_location,omitempty"`
	Contact      string             `json:"contact,omitempty"`
	ScheduleDate time.Time          `json:"schedule_date"`
	Status       string             `json:"status"`
	Responsible  string             `json:"responsible,omitempty"`
	Lines        []OperationLineDTO `json:"lines"`
}

// ActionRequest body para POST /{receipts|deliveries}/{reference}/action.
type ActionRequest struct {
	Action string `json:"action"`
}

// ActionResponse resultado de aplicar una acción: referencia y estado final.
type ActionResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// MoveResponse representación HTTP de un movimiento del libro.
type MoveResponse struct {
	ID           string    `json:"id"`
	Reference    string    `json:"reference"`
	Date         time.Time `json:"date"`
	Contact      string    `json:"contact,omitempty"`
	FromLocation string    `json:"from_location,omitempty"`
	ToLocation   string    `json:"to_location,omitempty"`
	ProductSKU   string    `json:"product_sku"`
	Quantity     int64     `json:"quantity"`
	Direction    string    `json:"direction"`
	Status       string    `json:"status"`
}
