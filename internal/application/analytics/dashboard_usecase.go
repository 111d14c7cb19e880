// Package analytics contiene el caso de uso del tablero de operaciones.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// DashboardUseCase arma el resumen de recepciones y entregas: conteos por
// estado y operaciones atrasadas (fecha programada vencida sin estado terminal).
//
// Fuente de datos: DashboardRepository (consultas read-only de agregación).
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo}
}

// GetSummary construye el DashboardResponse.
//
// Cuatro consultas en paralelo: conteos por estado y atrasos, por cada tipo.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	now := time.Now()

	type countsResult struct {
		byStatus map[string]int64
		err      error
	}
	type lateResult struct {
		late int64
		err  error
	}

	receiptCh := make(chan countsResult, 1)
	deliveryCh := make(chan countsResult, 1)
	receiptLateCh := make(chan lateResult, 1)
	deliveryLateCh := make(chan lateResult, 1)

	go func() {
		m, err := uc.dashboardRepo.CountByStatus(ctx, entity.KindReceipt)
		receiptCh <- countsResult{m, err}
	}()
	go func() {
		m, err := uc.dashboardRepo.CountByStatus(ctx, entity.KindDelivery)
		deliveryCh <- countsResult{m, err}
	}()
	go func() {
		n, err := uc.dashboardRepo.CountLate(ctx, entity.KindReceipt, now)
		receiptLateCh <- lateResult{n, err}
	}()
	go func() {
		n, err := uc.dashboardRepo.CountLate(ctx, entity.KindDelivery, now)
		deliveryLateCh <- lateResult{n, err}
	}()

	receipts := <-receiptCh
	deliveries := <-deliveryCh
	receiptLate := <-receiptLateCh
	deliveryLate := <-deliveryLateCh

	if receipts.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de recepciones: %w", receipts.err)
	}
	if deliveries.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de entregas: %w", deliveries.err)
	}
	if receiptLate.err != nil {
		return nil, fmt.Errorf("dashboard: recepciones atrasadas: %w", receiptLate.err)
	}
	if deliveryLate.err != nil {
		return nil, fmt.Errorf("dashboard: entregas atrasadas: %w", deliveryLate.err)
	}

	return &dto.DashboardResponse{
		Receipt: dto.ReceiptSummaryDTO{
			ToReceive:  receipts.byStatus[entity.StatusReady],
			Late:       receiptLate.late,
			Operations: total(receipts.byStatus),
		},
		Delivery: dto.DeliverySummaryDTO{
			ToDeliver:  deliveries.byStatus[entity.StatusReady],
			Late:       deliveryLate.late,
			Waiting:    deliveries.byStatus[entity.StatusWaiting],
			Operations: total(deliveries.byStatus),
		},
	}, nil
}

func total(byStatus map[string]int64) int64 {
	var n int64
	for _, c := range byStatus {
		n += c
	}
	return n
}
