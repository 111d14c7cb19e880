package dto

// ReceiptSummaryDTO conteos de recepciones para el tablero.
type ReceiptSummaryDTO struct {
	ToReceive  int64 `json:"to_receive"`
	Late       int64 `json:"late"`
	Operations int64 `json:"operations"`
}

// DeliverySummaryDTO conteos de entregas para el tablero.
type DeliverySummaryDTO struct {
	ToDeliver  int64 `json:"to_deliver"`
	Late       int64 `json:"late"`
	Waiting    int64 `json:"waiting"`
	Operations int64 `json:"operations"`
}

// DashboardResponse resumen del tablero: conteos por estado y atrasos por tipo.
type DashboardResponse struct {
	Receipt  ReceiptSummaryDTO  `json:"receipt"`
	Delivery DeliverySummaryDTO `json:"delivery"`
}
