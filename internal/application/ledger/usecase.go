// Package ledger expone la consulta del libro de movimientos de stock.
// La escritura ocurre únicamente dentro del motor de operaciones, en la misma
// transacción que el cambio de estado; los registros nunca se mutan después.
package ledger

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// LedgerUseCase caso de uso read-only del historial de movimientos.
type LedgerUseCase struct {
	moveRepo repository.MoveRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(moveRepo repository.MoveRepository) *LedgerUseCase {
	return &LedgerUseCase{moveRepo: moveRepo}
}

// List devuelve los movimientos en orden de creación.
func (uc *LedgerUseCase) List(limit, offset int) ([]*dto.MoveResponse, error) {
	moves, err := uc.moveRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MoveResponse, 0, len(moves))
	for _, m := range moves {
		out = append(out, &dto.MoveResponse{
			ID:           m.ID,
			Reference:    m.Reference,
			Date:         m.Date,
			Contact:      m.Contact,
			FromLocation: m.FromLocation,
			ToLocation:   m.ToLocation,
			ProductSKU:   m.ProductSKU,
			Quantity:     m.Quantity,
			Direction:    m.Direction,
			Status:       m.Status,
		})
	}
	return out, nil
}
